// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSelf is the tool's own identity when no manifest names one.
var DefaultSelf = MustParse("com.epam.reportportal:reportportal-maven-plugin")

// Manifest is what the artifact resolver hands over: the tool's own
// identity, every artifact it resolved for the tool (with file and trail),
// and the dependencies declared on the tool's plugin entry.
type Manifest struct {
	Self         Identity
	Artifacts    []Ref
	Dependencies []Identity
}

type rawManifest struct {
	Self         *Identity     `yaml:"self"`
	Artifacts    []rawArtifact `yaml:"artifacts"`
	Dependencies []Identity    `yaml:"dependencies"`
}

type rawArtifact struct {
	ID    Identity   `yaml:"id"`
	File  string     `yaml:"file"`
	Trail []Identity `yaml:"trail"`
}

// UnmarshalYAML accepts either a coordinate string or a mapping with an
// "id" coordinate and an optional "scope".
func (id *Identity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*id = parsed
		return nil
	case yaml.MappingNode:
		var raw struct {
			ID    string `yaml:"id"`
			Scope string `yaml:"scope"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		parsed, err := Parse(raw.ID)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		parsed.Scope = raw.Scope
		*id = parsed
		return nil
	}
	return fmt.Errorf("line %d: artifact identity must be a string or a mapping", value.Line)
}

// LoadManifest reads a resolver manifest. Relative artifact files resolve
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact manifest %s: %w", path, err)
	}

	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact manifest %s: %w", path, err)
	}

	m := &Manifest{Self: DefaultSelf, Dependencies: raw.Dependencies}
	if raw.Self != nil {
		m.Self = *raw.Self
	}

	base := filepath.Dir(path)
	for i, a := range raw.Artifacts {
		if a.File == "" {
			return nil, fmt.Errorf("artifact manifest %s: artifact %d (%s) has no file", path, i, a.ID)
		}
		file := a.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		m.Artifacts = append(m.Artifacts, Ref{Identity: a.ID, File: file, Trail: a.Trail})
	}
	return m, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/fsutil"
)

// DefaultFileNames are looked up, in order, when Load is given a directory.
var DefaultFileNames = []string{
	"rpinject.hcl",
	"rpinject.yaml",
	"rpinject.yml",
	"rpinject.toml",
	"rpinject.json",
	"rpinject.jsonc",
}

// Loader reads a descriptor file in one format into the format-agnostic
// model.
type Loader interface {
	Load(ctx context.Context, path string) (*Project, error)
}

// LoaderFor picks a loader by file extension.
func LoaderFor(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return NewHCLLoader(), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(), nil
	case ".toml":
		return NewTOMLLoader(), nil
	case ".json", ".jsonc":
		return NewJSONLoader(), nil
	}
	return nil, fmt.Errorf("unsupported descriptor format %q (expected .hcl, .yaml, .yml, .toml, .json or .jsonc)", filepath.Ext(path))
}

// Load reads the descriptor at path with the loader matching its extension.
// A directory is searched for the first of DefaultFileNames. The returned
// project's Source is the absolute path of the file that was read.
func Load(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		found, err := fsutil.FindFirst(path, DefaultFileNames...)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s for a descriptor: %w", path, err)
		}
		if found == "" {
			return nil, fmt.Errorf("no descriptor found in %s (looked for %s)", path, strings.Join(DefaultFileNames, ", "))
		}
		logger.Debug("Descriptor found in directory.", "dir", path, "file", found)
		path = found
	}

	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve descriptor path %s: %w", path, err)
	}

	logger.Debug("Loading descriptor.", "path", abs, "loader", fmt.Sprintf("%T", loader))
	project, err := loader.Load(ctx, abs)
	if err != nil {
		return nil, err
	}
	project.Source = abs
	logger.Debug("Descriptor loaded.",
		"project", project.Identity().ID(),
		"dependencies", len(project.Dependencies),
		"plugins", len(project.Plugins),
	)
	return project, nil
}

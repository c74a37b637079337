// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package properties merges reporting settings declared in the build
// descriptor into the persisted agent property file.
package properties

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/specialistvlad/rpinject/internal/fsutil"
)

const (
	// Prefix namespaces every reporting property.
	Prefix = "rp."
	// PathKey overrides where the property file lives, relative to the
	// test-output root.
	PathKey = "rp.properties.path"
	// DefaultFileName is the agent's default property file name.
	DefaultFileName = "reportportal.properties"
	// PathEnv overrides DefaultFileName for every project on the machine.
	PathEnv = "RP_PROPERTIES_PATH"
	// Header is written as a comment on the first line of the file.
	Header = "Report Portal generated properties"
)

// DefaultRelativePath returns the property file path the agent looks for
// when the descriptor does not say otherwise.
func DefaultRelativePath() string {
	if v, ok := os.LookupEnv(PathEnv); ok && v != "" {
		return v
	}
	return DefaultFileName
}

// Declared extracts the reporting properties from a plugin configuration:
// top-level children whose name carries Prefix and that hold a scalar value.
// A later duplicate overrides an earlier one.
func Declared(cfg *configtree.Node) map[string]string {
	out := make(map[string]string)
	if cfg == nil {
		return out
	}
	for _, child := range cfg.Children() {
		if !strings.HasPrefix(child.Name(), Prefix) {
			continue
		}
		if v, ok := child.Scalar(); ok {
			out[child.Name()] = v
		}
	}
	return out
}

// ResolvePath returns the property file location under testOutputDir. A
// declared PathKey wins over defaultRel.
func ResolvePath(testOutputDir string, declared map[string]string, defaultRel string) string {
	rel := defaultRel
	if v, ok := declared[PathKey]; ok {
		rel = v
	}
	return filepath.Join(testOutputDir, rel)
}

// Merge overlays declared onto the properties persisted at path and writes
// the result back. A missing file is an empty starting point. Keys already
// in the file but not declared are kept. The merged set is returned.
//
// Merging is idempotent: running it twice with the same input leaves the
// same file behind.
func Merge(ctx context.Context, path string, declared map[string]string) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	props, err := read(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded persisted properties.", "path", path, "count", props.Len())

	for k, v := range declared {
		if _, _, err := props.Set(k, v); err != nil {
			return nil, fault.Wrap("set property "+k+" for", path, err)
		}
	}
	props.Sort()

	var buf bytes.Buffer
	buf.WriteString("# " + Header + "\n")
	if err := encode(&buf, props); err != nil {
		return nil, fault.Wrap("encode", path, err)
	}
	if err := fsutil.AtomicWriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fault.Wrap("write", path, err)
	}

	logger.Debug("Property file written.", "path", path, "declared", len(declared), "total", props.Len())
	return props.Map(), nil
}

// read loads the property file at path, treating an absent file as empty.
// Values are kept verbatim: ${...} references belong to the agent.
func read(path string) (*properties.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if fault.IsAbsent(err) {
			props := properties.NewProperties()
			props.DisableExpansion = true
			return props, nil
		}
		return nil, fault.Wrap("read", path, err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fault.Wrap("read", path, err)
	}
	return props, nil
}

// encode writes props one "key = value" line at a time. The library leaves
// leading spaces of a value bare, and a reader trims those after the
// separator, so they are escaped as part of the separator instead.
func encode(w io.Writer, props *properties.Properties) error {
	for _, k := range props.Keys() {
		v, _ := props.Get(k)
		trimmed := strings.TrimLeft(v, " ")

		entry := properties.NewProperties()
		entry.DisableExpansion = true
		entry.WriteSeparator = " = " + strings.Repeat(`\ `, len(v)-len(trimmed))
		if _, _, err := entry.Set(k, trimmed); err != nil {
			return err
		}
		if _, err := entry.Write(w, properties.UTF8); err != nil {
			return err
		}
	}
	return nil
}

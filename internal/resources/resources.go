// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package resources holds the templates bundled into the binary, addressed by
// their slash-separated path relative to the bundle root.
package resources

import (
	"embed"
	"errors"
	"io/fs"

	"github.com/specialistvlad/rpinject/internal/fault"
)

const (
	// ExtensionTemplate registers the reporting extension with the JUnit 5
	// service loader.
	ExtensionTemplate = "services/org.junit.jupiter.api.extension.Extension"
	// PlatformPropertiesTemplate enables extension auto-detection.
	PlatformPropertiesTemplate = "junit-platform.properties"
)

//go:embed files
var bundle embed.FS

// FS is the bundle rooted at its top directory.
var FS fs.FS = mustSub(bundle, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Load returns the bytes of the bundled file at path.
func Load(path string) ([]byte, error) {
	return LoadFrom(FS, path)
}

// LoadFrom reads path from fsys, reporting a missing file as a
// *fault.ResourceMissingError.
func LoadFrom(fsys fs.FS, path string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fault.ResourceMissingError{Path: path}
		}
		return nil, fault.Wrap("read bundled resource", path, err)
	}
	return data, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package provider installs test-framework integration hooks into the
// test-output directory. A provider file is a line-oriented service
// registration that several tools may contribute to, so an existing file is
// always appended to and never replaced. A companion file is a single-owner
// settings file: whoever writes it first wins.
package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/specialistvlad/rpinject/internal/fsutil"
)

const (
	// ServicesDir is where service-loader registrations live, relative to the
	// test-output root.
	ServicesDir = "META-INF/services"
	// ExtensionFile is the JUnit 5 extension registration file name.
	ExtensionFile = "org.junit.jupiter.api.extension.Extension"
	// PlatformPropertiesFile is the JUnit platform settings file name.
	PlatformPropertiesFile = "junit-platform.properties"
)

// ExtensionPath returns the JUnit 5 provider file location under root.
func ExtensionPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(ServicesDir), ExtensionFile)
}

// PlatformPropertiesPath returns the JUnit platform companion file location
// under root.
func PlatformPropertiesPath(root string) string {
	return filepath.Join(root, PlatformPropertiesFile)
}

// InstallProvider registers template in the provider file at dest. A missing
// file is created with create-new semantics; an existing one gets a newline
// followed by template appended, so prior registrations survive. Repeated
// installs leave duplicate lines, which service loaders tolerate.
func InstallProvider(ctx context.Context, template []byte, dest string) error {
	logger := ctxlog.FromContext(ctx)

	exists, err := fsutil.Exists(dest)
	if err != nil {
		return fault.Wrap("inspect provider file", dest, err)
	}

	if exists {
		logger.Debug("Appending to existing provider file.", "path", dest)
		f, err := os.OpenFile(dest, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			return fault.Wrap("open provider file", dest, err)
		}
		buf := make([]byte, 0, len(template)+1)
		buf = append(buf, '\n')
		buf = append(buf, template...)
		if _, err := f.Write(buf); err != nil {
			_ = f.Close()
			return fault.Wrap("write provider file", dest, err)
		}
		return fault.Wrap("write provider file", dest, f.Close())
	}

	logger.Debug("Creating provider file.", "path", dest)
	if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return fault.Wrap("create directory for", dest, err)
	}
	// A file appearing between the check and the create is not retried.
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fault.Wrap("create provider file", dest, err)
	}
	if _, err := f.Write(template); err != nil {
		_ = f.Close()
		return fault.Wrap("write provider file", dest, err)
	}
	return fault.Wrap("write provider file", dest, f.Close())
}

// InstallCompanion writes template to dest unless a file is already there.
// It reports whether it wrote anything.
func InstallCompanion(ctx context.Context, template []byte, dest string) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	exists, err := fsutil.Exists(dest)
	if err != nil {
		return false, fault.Wrap("inspect companion file", dest, err)
	}
	if exists {
		logger.Debug("Companion file already present, leaving it untouched.", "path", dest)
		return false, nil
	}

	if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return false, fault.Wrap("create directory for", dest, err)
	}
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Someone else got there first, which is the outcome we want anyway.
			return false, nil
		}
		return false, fault.Wrap("create companion file", dest, err)
	}
	if _, err := f.Write(template); err != nil {
		_ = f.Close()
		return false, fault.Wrap("write companion file", dest, err)
	}
	if err := f.Close(); err != nil {
		return false, fault.Wrap("write companion file", dest, err)
	}
	logger.Debug("Companion file written.", "path", dest)
	return true, nil
}

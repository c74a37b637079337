// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fault defines the error taxonomy shared by every step of the
// injector. A fault is either fatal (a missing bundled resource, an I/O
// failure) or the absent-file condition, which callers treat as an empty
// base state rather than an error.
package fault

import (
	"errors"
	"fmt"
	"io/fs"
)

// ResourceMissingError reports a bundled template that could not be located.
// It always means the tool's own packaging is broken.
type ResourceMissingError struct {
	Path string
}

// Error implements the error interface.
func (e *ResourceMissingError) Error() string {
	return fmt.Sprintf("bundled resource %q not found", e.Path)
}

// IOError is a read, write, copy or open failure that is not explained by
// the file simply being absent.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Wrap returns an *IOError for op on path, or nil when err is nil.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// IsAbsent reports whether err means "the file does not exist".
func IsAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

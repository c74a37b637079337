// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/specialistvlad/rpinject/internal/fsutil"
	"github.com/specialistvlad/rpinject/internal/session"
)

// PhysicalCopy unpacks each artifact archive into the test-output
// directory. Entries whose destination already exists are left alone, so
// the first artifact to provide a path wins and repeated runs are no-ops.
// A failure part-way leaves whatever was already copied in place.
type PhysicalCopy struct{}

func (p *PhysicalCopy) Kind() Kind { return KindCopy }

func (p *PhysicalCopy) Policy() artifact.Policy { return artifact.PolicyTrail }

// Inject unpacks refs in order. Applied and Skipped count archive entries.
func (p *PhysicalCopy) Inject(ctx context.Context, sess session.Session, refs []artifact.Ref) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	root := sess.TestOutputDir()

	var total Result
	for _, ref := range refs {
		logger.Debug("Unpacking artifact.", "id", ref.Identity.ID(), "file", ref.File)
		res, err := unpack(ref.File, root)
		total.Applied += res.Applied
		total.Skipped += res.Skipped
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// unpack copies every entry of the archive at file under root.
func unpack(file, root string) (Result, error) {
	var res Result

	r, err := zip.OpenReader(file)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return res, fault.Wrap("open archive", file, err)
	}
	defer r.Close()

	for _, entry := range r.File {
		if entry.Name == "" {
			continue
		}
		if !filepath.IsLocal(entry.Name) || strings.Contains(entry.Name, `\`) {
			return res, fault.Wrap("copy from archive", file, fmt.Errorf("entry %q escapes the output directory", entry.Name))
		}
		dest := filepath.Join(root, filepath.FromSlash(entry.Name))

		exists, err := fsutil.Exists(dest)
		if err != nil {
			return res, fault.Wrap("copy from archive", file, err)
		}
		if exists {
			res.Skipped++
			continue
		}

		if entry.FileInfo().IsDir() {
			if err := fsutil.EnsureDir(dest); err != nil {
				return res, fault.Wrap("copy from archive", file, err)
			}
			res.Applied++
			continue
		}

		if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
			return res, fault.Wrap("copy from archive", file, err)
		}
		if err := copyEntry(entry, dest); err != nil {
			return res, fault.Wrap("copy from archive", file, fmt.Errorf("%s: %w", entry.Name, err))
		}
		res.Applied++
	}
	return res, nil
}

func copyEntry(entry *zip.File, dest string) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/specialistvlad/rpinject/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// EncodeHCL renders p as an HCL descriptor that HCLLoader reads back into an
// equivalent project. Configuration trees are written in attribute form so
// that dotted keys survive.
func EncodeHCL(p *Project) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	pb := root.AppendNewBlock("project", nil).Body()
	setString(pb, "group", p.Group)
	setString(pb, "artifact", p.Artifact)
	setString(pb, "version", p.Version)
	setString(pb, "build_directory", p.BuildDirectory)
	setString(pb, "test_output_directory", p.TestOutputDirectory)

	for _, d := range p.Dependencies {
		root.AppendNewline()
		scope := d.Scope
		d.Scope = ""
		db := root.AppendNewBlock("dependency", []string{d.ID()}).Body()
		setString(db, "scope", scope)
	}

	for _, pl := range p.Plugins {
		root.AppendNewline()
		bb := root.AppendNewBlock("plugin", []string{pl.Coordinates.Key()}).Body()
		setString(bb, "version", pl.Coordinates.Version)
		setConfiguration(bb, pl.Configuration)

		for _, e := range pl.Executions {
			eb := bb.AppendNewBlock("execution", []string{e.ID}).Body()
			setString(eb, "phase", e.Phase)
			if len(e.Goals) > 0 {
				goals := make([]cty.Value, len(e.Goals))
				for i, g := range e.Goals {
					goals[i] = cty.StringVal(g)
				}
				eb.SetAttributeValue("goals", cty.TupleVal(goals))
			}
			setConfiguration(eb, e.Configuration)
		}
	}
	return f.Bytes()
}

// WriteHCL writes the HCL rendering of p to w.
func WriteHCL(w io.Writer, p *Project) error {
	_, err := w.Write(EncodeHCL(p))
	return err
}

// Save writes the HCL rendering of p to path, replacing any existing file
// atomically.
func Save(ctx context.Context, path string, p *Project) error {
	if err := fsutil.AtomicWriteFile(path, EncodeHCL(p), 0o644); err != nil {
		return fault.Wrap("write descriptor", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Descriptor written.", "path", path, "plugins", len(p.Plugins))
	return nil
}

func setString(b *hclwrite.Body, name, value string) {
	if value != "" {
		b.SetAttributeValue(name, cty.StringVal(value))
	}
}

func setConfiguration(b *hclwrite.Body, cfg *configtree.Node) {
	if cfg == nil {
		return
	}
	if cfg.Len() == 0 {
		b.SetAttributeValue(ConfigurationName, cty.EmptyObjectVal)
		return
	}
	b.SetAttributeValue(ConfigurationName, cfg.CtyValue())
}

// String renders p for debugging.
func (p *Project) String() string {
	return fmt.Sprintf("%s (%d dependencies, %d plugins)", p.Identity().ID(), len(p.Dependencies), len(p.Plugins))
}

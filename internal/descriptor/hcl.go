// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// --- HCL file schema ---

// hclFile is the top-level structure of an HCL descriptor. Only the project
// block is decoded eagerly; the rest waits for an evaluation context that
// can resolve project.* references.
type hclFile struct {
	Project      *hclProject      `hcl:"project,block"`
	Dependencies []*hclDependency `hcl:"dependency,block"`
	Plugins      []*hclPlugin     `hcl:"plugin,block"`
}

type hclProject struct {
	Group               string `hcl:"group,optional"`
	Artifact            string `hcl:"artifact,optional"`
	Version             string `hcl:"version,optional"`
	BuildDirectory      string `hcl:"build_directory,optional"`
	TestOutputDirectory string `hcl:"test_output_directory,optional"`
}

type hclDependency struct {
	Coordinates      string    `hcl:"coordinates,label"`
	CoordinatesRange hcl.Range `hcl:"coordinates,label_range"`
	Body             hcl.Body  `hcl:",remain"`
}

type hclDependencyBody struct {
	Scope string `hcl:"scope,optional"`
}

type hclPlugin struct {
	Key      string    `hcl:"key,label"`
	KeyRange hcl.Range `hcl:"key,label_range"`
	Body     hcl.Body  `hcl:",remain"`
}

// Plugin and execution bodies accept configuration either as a block or as
// an object attribute, so they are decoded against explicit schemas.
var pluginSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
		{Name: ConfigurationName},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: ConfigurationName},
		{Type: "execution", LabelNames: []string{"id"}},
	},
}

var executionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "phase"},
		{Name: "goals"},
		{Name: ConfigurationName},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: ConfigurationName},
	},
}

// HCLLoader is the HCL implementation of Loader.
type HCLLoader struct {
	// Environ supplies the env.* variables. It defaults to os.Environ.
	Environ func() []string
}

// NewHCLLoader creates a new HCL descriptor loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{Environ: os.Environ}
}

// Load parses and decodes the HCL descriptor at path.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	envVal := l.envValue()
	var root hclFile
	diags = gohcl.DecodeBody(file.Body, &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	project := &Project{}
	if root.Project != nil {
		project.Group = root.Project.Group
		project.Artifact = root.Project.Artifact
		project.Version = root.Project.Version
		project.BuildDirectory = root.Project.BuildDirectory
		project.TestOutputDirectory = root.Project.TestOutputDirectory
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":     envVal,
			"project": projectValue(project),
		},
	}

	for _, dep := range root.Dependencies {
		id, err := artifact.Parse(dep.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency coordinates",
				Detail:   err.Error(),
				Subject:  dep.CoordinatesRange.Ptr(),
			}})
		}
		var body hclDependencyBody
		if diags := gohcl.DecodeBody(dep.Body, evalCtx, &body); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
		id.Scope = body.Scope
		project.Dependencies = append(project.Dependencies, id)
	}

	for _, p := range root.Plugins {
		plugin, diags := decodePlugin(p, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
		project.Plugins = append(project.Plugins, plugin)
	}

	logger.Debug("HCL descriptor decoded.", "path", path, "plugins", len(project.Plugins))
	return project, nil
}

func (l *HCLLoader) envValue() cty.Value {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	vars := make(map[string]cty.Value)
	for _, kv := range environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}

// projectValue exposes the project block to expressions as project.*.
func projectValue(p *Project) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"group":                 cty.StringVal(p.Group),
		"artifact":              cty.StringVal(p.Artifact),
		"version":               cty.StringVal(p.Version),
		"build_directory":       cty.StringVal(p.BuildDirectory),
		"test_output_directory": cty.StringVal(p.TestOutputDirectory),
	})
}

func decodePlugin(p *hclPlugin, ctx *hcl.EvalContext) (*Plugin, hcl.Diagnostics) {
	id, err := artifact.Parse(p.Key)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid plugin key",
			Detail:   err.Error(),
			Subject:  p.KeyRange.Ptr(),
		}}
	}

	content, diags := p.Body.Content(pluginSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	plugin := &Plugin{Coordinates: id}
	if attr, ok := content.Attributes["version"]; ok {
		moreDiags := gohcl.DecodeExpression(attr.Expr, ctx, &plugin.Coordinates.Version)
		diags = append(diags, moreDiags...)
	}

	cfg, cfgDiags := decodeConfiguration(content, ctx)
	diags = append(diags, cfgDiags...)
	plugin.Configuration = cfg

	for _, block := range content.Blocks.OfType("execution") {
		exec, execDiags := decodeExecution(block, ctx)
		diags = append(diags, execDiags...)
		if exec != nil {
			plugin.Executions = append(plugin.Executions, exec)
		}
	}
	return plugin, diags
}

func decodeExecution(block *hcl.Block, ctx *hcl.EvalContext) (*Execution, hcl.Diagnostics) {
	content, diags := block.Body.Content(executionSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	exec := &Execution{ID: block.Labels[0]}
	if attr, ok := content.Attributes["phase"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &exec.Phase)...)
	}
	if attr, ok := content.Attributes["goals"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &exec.Goals)...)
	}

	cfg, cfgDiags := decodeConfiguration(content, ctx)
	diags = append(diags, cfgDiags...)
	exec.Configuration = cfg
	return exec, diags
}

// decodeConfiguration builds the configuration tree from whichever form the
// body used. Declaring it twice is an error.
func decodeConfiguration(content *hcl.BodyContent, ctx *hcl.EvalContext) (*configtree.Node, hcl.Diagnostics) {
	attr, hasAttr := content.Attributes[ConfigurationName]
	blocks := content.Blocks.OfType(ConfigurationName)

	if (hasAttr && len(blocks) > 0) || len(blocks) > 1 {
		subject := blocks[len(blocks)-1].DefRange
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Duplicate configuration",
			Detail:   "Only one configuration, either a block or an attribute, may be declared here.",
			Subject:  &subject,
		}}
	}

	if len(blocks) == 1 {
		return configtree.FromHCLBody(ConfigurationName, blocks[0].Body, ctx)
	}
	if !hasAttr {
		return nil, nil
	}

	nodes, diags := configtree.FromHCLExpression(ConfigurationName, attr.Expr, ctx)
	if diags.HasErrors() {
		return nil, diags
	}
	if len(nodes) != 1 {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid configuration",
			Detail:   "The configuration attribute must be an object.",
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	if _, isScalar := nodes[0].Scalar(); isScalar {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid configuration",
			Detail:   "The configuration attribute must be an object, not a single value.",
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	return nodes[0], diags
}

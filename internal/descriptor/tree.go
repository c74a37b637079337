// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
)

// treeLoader implements Loader for every format that is first converted
// into a configuration tree. Only the decode step differs per format.
type treeLoader struct {
	format string
	decode func(data []byte) ([]*configtree.Node, error)
}

// Load reads path, converts it into a tree and binds the tree to the model.
func (l *treeLoader) Load(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s descriptor %s: %w", l.format, path, err)
	}
	nodes, err := l.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s descriptor %s: %w", l.format, path, err)
	}
	if len(nodes) != 1 || isScalar(nodes[0]) {
		return nil, fmt.Errorf("failed to parse %s descriptor %s: the document must be a single mapping", l.format, path)
	}

	project, err := fromTree(nodes[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s descriptor %s: %w", l.format, path, err)
	}
	logger.Debug("Descriptor tree decoded.", "format", l.format, "path", path, "plugins", len(project.Plugins))
	return project, nil
}

const rootName = "descriptor"

var (
	rootKeys      = []string{"project", "dependencies", "plugins"}
	projectKeys   = []string{"group", "artifact", "version", "build_directory", "test_output_directory"}
	pluginKeys    = []string{"key", "version", ConfigurationName, "executions"}
	executionKeys = []string{"id", "phase", "goals", ConfigurationName}
)

// fromTree binds a decoded document to the model. The layout mirrors the
// HCL schema with plural list names: dependencies, plugins, executions.
func fromTree(root *configtree.Node) (*Project, error) {
	if err := checkKeys(root, "top level", rootKeys); err != nil {
		return nil, err
	}

	p := &Project{}
	if proj := root.FindChild("project"); proj != nil {
		if err := checkKeys(proj, "project", projectKeys); err != nil {
			return nil, err
		}
		p.Group, _ = proj.ChildValue("group")
		p.Artifact, _ = proj.ChildValue("artifact")
		p.Version, _ = proj.ChildValue("version")
		p.BuildDirectory, _ = proj.ChildValue("build_directory")
		p.TestOutputDirectory, _ = proj.ChildValue("test_output_directory")
	}

	for i, dep := range entries(root, "dependencies") {
		id, err := identityFromNode(dep)
		if err != nil {
			return nil, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		p.Dependencies = append(p.Dependencies, id)
	}

	for i, pn := range entries(root, "plugins") {
		plugin, err := pluginFromNode(pn)
		if err != nil {
			return nil, fmt.Errorf("plugins[%d]: %w", i, err)
		}
		p.Plugins = append(p.Plugins, plugin)
	}
	return p, nil
}

// identityFromNode accepts a bare coordinate string or a mapping with id and
// an optional scope.
func identityFromNode(n *configtree.Node) (artifact.Identity, error) {
	if v, ok := n.Scalar(); ok {
		return artifact.Parse(v)
	}
	if err := checkKeys(n, "dependency", []string{"id", "scope"}); err != nil {
		return artifact.Identity{}, err
	}
	coords, ok := n.ChildValue("id")
	if !ok {
		return artifact.Identity{}, fmt.Errorf("dependency has no id")
	}
	id, err := artifact.Parse(coords)
	if err != nil {
		return artifact.Identity{}, err
	}
	id.Scope, _ = n.ChildValue("scope")
	return id, nil
}

func pluginFromNode(n *configtree.Node) (*Plugin, error) {
	if err := checkKeys(n, "plugin", pluginKeys); err != nil {
		return nil, err
	}
	key, ok := n.ChildValue("key")
	if !ok {
		return nil, fmt.Errorf("plugin has no key")
	}
	id, err := artifact.Parse(key)
	if err != nil {
		return nil, err
	}
	if v, ok := n.ChildValue("version"); ok {
		id.Version = v
	}

	plugin := &Plugin{Coordinates: id}
	if cfg := n.FindChild(ConfigurationName); cfg != nil {
		plugin.Configuration = cfg.Clone()
	}

	for i, en := range entries(n, "executions") {
		if err := checkKeys(en, "execution", executionKeys); err != nil {
			return nil, fmt.Errorf("%s executions[%d]: %w", key, i, err)
		}
		execID, ok := en.ChildValue("id")
		if !ok {
			return nil, fmt.Errorf("%s executions[%d]: execution has no id", key, i)
		}
		exec := &Execution{ID: execID, Goals: en.Values("goals")}
		exec.Phase, _ = en.ChildValue("phase")
		if cfg := en.FindChild(ConfigurationName); cfg != nil {
			exec.Configuration = cfg.Clone()
		}
		plugin.Executions = append(plugin.Executions, exec)
	}
	return plugin, nil
}

// entries returns the list items named name. An empty list decodes to a
// single empty node, which carries no entry.
func entries(n *configtree.Node, name string) []*configtree.Node {
	var out []*configtree.Node
	for _, c := range n.ChildrenNamed(name) {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}

func isScalar(n *configtree.Node) bool {
	_, ok := n.Scalar()
	return ok
}

// checkKeys rejects children of n not listed in allowed.
func checkKeys(n *configtree.Node, where string, allowed []string) error {
	for _, c := range n.Children() {
		known := false
		for _, a := range allowed {
			if c.Name() == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unsupported key %q in %s", c.Name(), where)
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package configtree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a yaml.v3 node into nodes named name, keeping document
// order. Sequences expand into repeated siblings.
func FromYAML(name string, n *yaml.Node) ([]*Node, error) {
	if n == nil {
		return []*Node{New(name)}, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return []*Node{New(name)}, nil
		}
		return FromYAML(name, n.Content[0])

	case yaml.AliasNode:
		return FromYAML(name, n.Alias)

	case yaml.MappingNode:
		node := New(name)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if key == "" {
				return nil, fmt.Errorf("line %d: empty key inside %q", n.Content[i].Line, name)
			}
			children, err := FromYAML(key, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			appendAll(node, key, children)
		}
		return []*Node{node}, nil

	case yaml.SequenceNode:
		var nodes []*Node
		for _, item := range n.Content {
			children, err := FromYAML(name, item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, children...)
		}
		return nodes, nil

	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return []*Node{New(name)}, nil
		}
		return []*Node{NewLeaf(name, n.Value)}, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node for %q", n.Line, name)
}

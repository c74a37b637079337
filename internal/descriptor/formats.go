// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// NewYAMLLoader creates a loader for YAML descriptors. Mapping order is kept.
func NewYAMLLoader() Loader {
	return &treeLoader{format: "YAML", decode: func(data []byte) ([]*configtree.Node, error) {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Kind == 0 {
			return []*configtree.Node{configtree.New(rootName)}, nil
		}
		return configtree.FromYAML(rootName, &doc)
	}}
}

// NewTOMLLoader creates a loader for TOML descriptors. TOML tables decode
// into Go maps, so keys within a table come back sorted.
func NewTOMLLoader() Loader {
	return &treeLoader{format: "TOML", decode: func(data []byte) ([]*configtree.Node, error) {
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc == nil {
			doc = map[string]any{}
		}
		return configtree.FromValue(rootName, doc)
	}}
}

// NewJSONLoader creates a loader for JSON descriptors. Comments and trailing
// commas are accepted; object order is kept.
func NewJSONLoader() Loader {
	return &treeLoader{format: "JSON", decode: func(data []byte) ([]*configtree.Node, error) {
		return configtree.FromJSON(rootName, jsonc.ToJSON(data))
	}}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package configtree

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// CtyValue renders the node as a cty value. Leaves become strings (null when
// no value is set); nodes with children become objects whose repeated child
// names collapse into tuples, preserving their relative order.
func (n *Node) CtyValue() cty.Value {
	if len(n.children) == 0 {
		if n.value == nil {
			return cty.NullVal(cty.String)
		}
		return cty.StringVal(*n.value)
	}

	var order []string
	groups := make(map[string][]cty.Value)
	for _, c := range n.children {
		if _, seen := groups[c.name]; !seen {
			order = append(order, c.name)
		}
		groups[c.name] = append(groups[c.name], c.CtyValue())
	}

	attrs := make(map[string]cty.Value, len(order))
	for _, name := range order {
		vals := groups[name]
		if len(vals) == 1 {
			attrs[name] = vals[0]
			continue
		}
		attrs[name] = cty.TupleVal(vals)
	}
	return cty.ObjectVal(attrs)
}

// FromCtyValue converts val into nodes named name. Objects and maps become a
// single node with one child per attribute (in key order); lists, sets and
// tuples become one sibling per element; primitives become leaves.
func FromCtyValue(name string, val cty.Value) ([]*Node, error) {
	if val.IsNull() {
		return []*Node{New(name)}, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value for %q is not known", name)
	}
	val, _ = val.UnmarkDeep()

	ty := val.Type()
	switch {
	case ty.IsObjectType() || ty.IsMapType():
		node := New(name)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			key := k.AsString()
			if key == "" {
				return nil, fmt.Errorf("empty key inside %q", name)
			}
			children, err := FromCtyValue(key, v)
			if err != nil {
				return nil, err
			}
			appendAll(node, key, children)
		}
		return []*Node{node}, nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var nodes []*Node
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			children, err := FromCtyValue(name, v)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, children...)
		}
		return nodes, nil

	case ty.IsPrimitiveType():
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to a string: %w", name, err)
		}
		return []*Node{NewLeaf(name, str.AsString())}, nil
	}
	return nil, fmt.Errorf("unsupported value type %s for %q", ty.FriendlyName(), name)
}

// FromValue converts a decoded Go value (as produced by map-based decoders
// such as TOML) into nodes named name. Map keys are visited in sorted order
// because Go maps carry none.
func FromValue(name string, v any) ([]*Node, error) {
	switch val := v.(type) {
	case nil:
		return []*Node{New(name)}, nil
	case map[string]any:
		node := New(name)
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "" {
				return nil, fmt.Errorf("empty key inside %q", name)
			}
			children, err := FromValue(k, val[k])
			if err != nil {
				return nil, err
			}
			appendAll(node, k, children)
		}
		return []*Node{node}, nil
	case []map[string]any:
		items := make([]any, len(val))
		for i := range val {
			items[i] = val[i]
		}
		return FromValue(name, items)
	case []any:
		var nodes []*Node
		for _, item := range val {
			children, err := FromValue(name, item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, children...)
		}
		return nodes, nil
	case string:
		return []*Node{NewLeaf(name, val)}, nil
	case bool:
		return []*Node{NewLeaf(name, strconv.FormatBool(val))}, nil
	case int64:
		return []*Node{NewLeaf(name, strconv.FormatInt(val, 10))}, nil
	case float64:
		return []*Node{NewLeaf(name, strconv.FormatFloat(val, 'f', -1, 64))}, nil
	case fmt.Stringer:
		return []*Node{NewLeaf(name, val.String())}, nil
	}
	return nil, fmt.Errorf("unsupported value type %T for %q", v, name)
}

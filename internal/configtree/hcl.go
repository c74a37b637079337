// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package configtree

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// FromHCLBody converts an HCL body into a node named name. Attributes and
// nested blocks become children in source order; labelled blocks are
// rejected because a configuration tree has nowhere to keep the label.
func FromHCLBody(name string, body hcl.Body, ctx *hcl.EvalContext) (*Node, hcl.Diagnostics) {
	node := New(name)
	var diags hcl.Diagnostics

	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		// Bodies from other syntaxes can't be enumerated without a schema;
		// attributes alone are still meaningful.
		attrs, attrDiags := body.JustAttributes()
		diags = append(diags, attrDiags...)
		names := make([]string, 0, len(attrs))
		for n := range attrs {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			children, exprDiags := FromHCLExpression(n, attrs[n].Expr, ctx)
			diags = append(diags, exprDiags...)
			appendAll(node, n, children)
		}
		return node, diags
	}

	type item struct {
		offset int
		attr   *hclsyntax.Attribute
		block  *hclsyntax.Block
	}
	items := make([]item, 0, len(syntaxBody.Attributes)+len(syntaxBody.Blocks))
	for _, attr := range syntaxBody.Attributes {
		items = append(items, item{offset: attr.SrcRange.Start.Byte, attr: attr})
	}
	for _, block := range syntaxBody.Blocks {
		items = append(items, item{offset: block.TypeRange.Start.Byte, block: block})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].offset < items[j].offset })

	for _, it := range items {
		if it.attr != nil {
			children, exprDiags := FromHCLExpression(it.attr.Name, it.attr.Expr, ctx)
			diags = append(diags, exprDiags...)
			appendAll(node, it.attr.Name, children)
			continue
		}
		if len(it.block.Labels) > 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected block label",
				Detail:   "Blocks inside a configuration tree cannot carry labels.",
				Subject:  it.block.LabelRanges[0].Ptr(),
			})
			continue
		}
		child, childDiags := FromHCLBody(it.block.Type, it.block.Body, ctx)
		diags = append(diags, childDiags...)
		node.Append(child)
	}
	return node, diags
}

// FromHCLExpression converts an attribute expression into nodes named name.
// Object constructors keep their source key order, tuple constructors expand
// into repeated siblings, and anything else is evaluated and converted from
// its cty value.
func FromHCLExpression(name string, expr hcl.Expression, ctx *hcl.EvalContext) ([]*Node, hcl.Diagnostics) {
	if pairs, mapDiags := hcl.ExprMap(expr); !mapDiags.HasErrors() {
		node := New(name)
		var diags hcl.Diagnostics
		for _, pair := range pairs {
			key, keyDiags := objectKey(pair.Key, ctx)
			diags = append(diags, keyDiags...)
			if keyDiags.HasErrors() {
				continue
			}
			children, valDiags := FromHCLExpression(key, pair.Value, ctx)
			diags = append(diags, valDiags...)
			appendAll(node, key, children)
		}
		return []*Node{node}, diags
	}

	if elems, listDiags := hcl.ExprList(expr); !listDiags.HasErrors() {
		var nodes []*Node
		var diags hcl.Diagnostics
		for _, elem := range elems {
			children, elemDiags := FromHCLExpression(name, elem, ctx)
			diags = append(diags, elemDiags...)
			nodes = append(nodes, children...)
		}
		return nodes, diags
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, diags
	}
	nodes, err := FromCtyValue(name, val)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid configuration value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return nodes, diags
}

// objectKey evaluates an object constructor key. Bare identifiers evaluate
// to their own name.
func objectKey(expr hcl.Expression, ctx *hcl.EvalContext) (string, hcl.Diagnostics) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", diags
	}
	if !val.IsNull() && val.IsKnown() {
		if str, err := convert.Convert(val, cty.String); err == nil && str.AsString() != "" {
			return str.AsString(), diags
		}
	}
	return "", append(diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid configuration key",
		Detail:   "Configuration keys must be non-empty strings.",
		Subject:  expr.Range().Ptr(),
	})
}

// appendAll adds children to node. A key whose value expanded to nothing,
// such as an empty list, still gets an empty child so the key is not lost.
func appendAll(node *Node, key string, children []*Node) {
	if len(children) == 0 {
		node.Append(New(key))
		return
	}
	for _, c := range children {
		node.Append(c)
	}
}

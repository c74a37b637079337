// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package configtree provides the ordered, named tree used for every piece of
// structured configuration the injector reads or writes: the declared
// configuration of this step, and the configuration of downstream build
// components that gets mutated.
//
// # Shape
//
// A Node has a non-empty name, an optional scalar value and an ordered list of
// children. Children may repeat by name, so a tree is not a mapping: a list of
// classpath elements is a run of sibling nodes sharing one name. A node that
// has children ignores its scalar value.
//
// # Ownership
//
// A tree belongs to the component whose configuration it represents. Callers
// that need to mutate another component's settings borrow the tree and append
// children; they never replace it.
//
// # Formats
//
// Descriptor formats convert into trees here (HCL bodies and expressions,
// YAML nodes, JSON token streams, decoded TOML values) and trees render back
// out as cty values for HCL and as XML for build systems that expect an
// XML-like document.
package configtree

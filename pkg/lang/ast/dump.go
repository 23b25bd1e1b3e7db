/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"strings"
)

// Dumper is a Visitor that renders a tree as an indented textual projection:
// one line per node, two spaces of indent per depth, the bracketed node kind,
// then the node's value if it has one. Identical trees always dump
// identically.
type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node *Node) Visitor {
	if node == nil {
		d.indent--
		return nil
	}

	line := strings.Repeat("  ", d.indent) + "[" + node.Type.String() + "]"
	if node.Value != "" {
		line += " " + node.Value
	}

	d.Output += line + "\n"
	d.indent++

	return d
}

// Dump renders node with a fresh Dumper.
func Dump(node *Node) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

type Visitor interface {
	Visit(*Node) Visitor
}

// Walk performs a preorder depth-first traversal of node. Visit is called
// with each node on the way down; after a node's children have been walked,
// Visit(nil) signals the ascent. Nil children are skipped.
func Walk(v Visitor, node *Node) {
	if node == nil {
		return
	}

	if v = v.Visit(node); v == nil {
		return
	}

	for _, child := range node.Children {
		Walk(v, child)
	}

	v.Visit(nil)
}

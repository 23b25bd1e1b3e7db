/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"testing"
)

func sampleTree() *Node {
	assign := New(NODE_ASSIGN, "=")
	assign.Append(New(NODE_ID, "x"))
	assign.Append(New(NODE_EXPR, "").Append(New(NODE_NUM, "1")))

	root := New(NODE_BLOCK, "")
	root.Append(New(NODE_DECLS, ""))
	root.Append(New(NODE_STMTS, "").Append(assign))
	return root
}

func TestDump(t *testing.T) {
	want := `[BLOCK]
  [DECLS]
  [STMTS]
    [ASSIGN] =
      [ID] x
      [EXPR]
        [NUM] 1
`

	if got := Dump(sampleTree()); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestDumpDeterministic(t *testing.T) {
	tree := sampleTree()

	first := Dump(tree)
	second := Dump(tree)

	if first != second {
		t.Error("dumping the same tree twice produced different output")
	}
}

func TestDumpSkipsNilChildren(t *testing.T) {
	loop := New(NODE_FOR, "")
	loop.Append(nil, nil, nil, New(NODE_BLOCK, ""))

	want := "[FOR]\n  [BLOCK]\n"
	if got := Dump(loop); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestWalkOrder(t *testing.T) {
	var order []string
	v := visitorFunc(func(n *Node) {
		if n != nil {
			order = append(order, n.Type.String())
		}
	})

	Walk(v, sampleTree())

	want := "BLOCK DECLS STMTS ASSIGN ID EXPR NUM"
	got := ""
	for i, s := range order {
		if i > 0 {
			got += " "
		}
		got += s
	}

	if got != want {
		t.Errorf("wanted preorder '%s', got '%s'", want, got)
	}
}

type visitorFunc func(*Node)

func (f visitorFunc) Visit(n *Node) Visitor {
	f(n)
	if n == nil {
		return nil
	}
	return f
}

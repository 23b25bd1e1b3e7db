/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// NodeType enumerates every parse-tree node kind. The set is closed; Walk
// and the Dumper rely on it being exhaustive.
type NodeType int

const (
	NODE_EXPR NodeType = iota
	NODE_BOOL
	NODE_DECLS
	NODE_STMTS
	NODE_ASSIGN
	NODE_IF
	NODE_WHILE
	NODE_FOR
	NODE_READ
	NODE_WRITE
	NODE_BLOCK
	NODE_OP
	NODE_ID
	NODE_NUM
	NODE_FLOAT
	NODE_BOOLVAL
	NODE_TYPE
	NODE_LIST
)

func (t NodeType) String() string {
	switch t {
	case NODE_EXPR:
		return "EXPR"
	case NODE_BOOL:
		return "BOOL"
	case NODE_DECLS:
		return "DECLS"
	case NODE_STMTS:
		return "STMTS"
	case NODE_ASSIGN:
		return "ASSIGN"
	case NODE_IF:
		return "IF"
	case NODE_WHILE:
		return "WHILE"
	case NODE_FOR:
		return "FOR"
	case NODE_READ:
		return "READ"
	case NODE_WRITE:
		return "WRITE"
	case NODE_BLOCK:
		return "BLOCK"
	case NODE_OP:
		return "OP"
	case NODE_ID:
		return "ID"
	case NODE_NUM:
		return "NUM"
	case NODE_FLOAT:
		return "FLOAT"
	case NODE_BOOLVAL:
		return "BOOLVAL"
	case NODE_TYPE:
		return "TYPE"
	case NODE_LIST:
		return "LIST"
	}
	return "UNKNOWN"
}

// Node is a parse-tree element. Children are ordered left-to-right as they
// appear in the source and are exclusively owned by their parent. A nil child
// marks an absent optional clause (e.g. an omitted for-loop initializer).
type Node struct {
	Type     NodeType
	Value    string
	Children []*Node
}

func New(t NodeType, value string) *Node {
	return &Node{Type: t, Value: value}
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

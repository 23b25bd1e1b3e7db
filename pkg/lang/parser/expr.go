/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/imp-lang/imp/pkg/lang/ast"
	"github.com/imp-lang/imp/pkg/lang/scanner"
)

// Operator precedence, low to high. "neg" is unary minus, rewritten from '-'
// during scanning.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
	"!": 6, "++": 6, "--": 6, "neg": 6,
}

var unaryOperators = map[string]struct{}{
	"!": {}, "++": {}, "--": {}, "neg": {},
}

// Operators whose result is boolean-shaped; used to pick the wrapper kind of
// a boolean expression.
var booleanOperators = map[string]struct{}{
	"==": {}, "!=": {}, "<": {}, "<=": {}, ">": {}, ">=": {},
	"&&": {}, "||": {}, "!": {},
}

// Open-parenthesis sentinel on the operator stack.
const openParen = "("

// arithmeticExpression parses an expression and wraps the reduced top in an
// EXPR node.
func (p *Parser) arithmeticExpression() *ast.Node {
	return ast.New(ast.NODE_EXPR, "").Append(p.scanExpression())
}

// booleanExpression parses an expression with the same engine; the wrapper is
// BOOL when the reduced top is a relational or logical operator, EXPR
// otherwise. Either way the wrapper has exactly one child.
func (p *Parser) booleanExpression() *ast.Node {
	top := p.scanExpression()
	if top.Type == ast.NODE_OP {
		if _, ok := booleanOperators[top.Value]; ok {
			return ast.New(ast.NODE_BOOL, "").Append(top)
		}
	}
	return ast.New(ast.NODE_EXPR, "").Append(top)
}

// scanExpression is the two-stack operator-precedence evaluator. It scans
// left to right, reducing whenever an incoming operator does not bind tighter
// than the stack top, and stops (leaving the token unconsumed) at ';', ',',
// '{', '}', or a ')' with no matching '(' of its own.
func (p *Parser) scanExpression() *ast.Node {
	var operands []*ast.Node
	var operators []string
	parens := 0

	reduce := func() {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		node := ast.New(ast.NODE_OP, op)
		if _, unary := unaryOperators[op]; unary {
			if len(operands) < 1 {
				p.fail(p.previous(), "missing operand for unary operator '%s'", op)
			}
			node.Append(operands[len(operands)-1])
			operands = operands[:len(operands)-1]
		} else {
			if len(operands) < 2 {
				p.fail(p.previous(), "missing operands for binary operator '%s'", op)
			}
			left, right := operands[len(operands)-2], operands[len(operands)-1]
			operands = operands[:len(operands)-2]
			node.Append(left, right)
		}

		operands = append(operands, node)
	}

scan:
	for {
		tok := p.peek()

		switch {
		case tok.Type == scanner.TOK_EOF:
			break scan

		case tok.Type == scanner.TOK_SEPARATOR &&
			(tok.Lexeme == ";" || tok.Lexeme == "," || tok.Lexeme == "{" || tok.Lexeme == "}"):
			break scan

		case tok.Type == scanner.TOK_SEPARATOR && tok.Lexeme == "(":
			p.advance()
			operators = append(operators, openParen)
			parens++

		case tok.Type == scanner.TOK_SEPARATOR && tok.Lexeme == ")":
			if parens == 0 {
				// closing a context the caller opened
				break scan
			}
			p.advance()
			for operators[len(operators)-1] != openParen {
				reduce()
			}
			operators = operators[:len(operators)-1]
			parens--

		case tok.Type == scanner.TOK_OPERATOR:
			p.advance()

			op := tok.Lexeme
			// '-' at the start of a (sub)expression is negation
			if op == "-" && (len(operands) == 0 ||
				(len(operators) > 0 && operators[len(operators)-1] == openParen)) {
				op = "neg"
			}

			prec, ok := precedence[op]
			if !ok {
				p.fail(tok, "operator '%s' is not valid in an expression", tok.Lexeme)
			}

			for len(operators) > 0 && operators[len(operators)-1] != openParen &&
				precedence[operators[len(operators)-1]] >= prec {
				reduce()
			}
			operators = append(operators, op)

		default:
			operands = append(operands, p.operand())
		}
	}

	for len(operators) > 0 {
		if operators[len(operators)-1] == openParen {
			p.fail(p.previous(), "unmatched parenthesis")
		}
		reduce()
	}

	if len(operands) == 0 {
		p.fail(p.peek(), "empty expression")
	}
	if len(operands) > 1 {
		p.fail(p.previous(), "malformed expression")
	}

	return operands[0]
}

// operand consumes a single leaf. A lexer error token becomes fatal here.
func (p *Parser) operand() *ast.Node {
	tok := p.advance()

	switch tok.Type {
	case scanner.TOK_IDENTIFIER:
		return ast.New(ast.NODE_ID, tok.Lexeme)
	case scanner.TOK_INTEGER:
		return ast.New(ast.NODE_NUM, tok.Lexeme)
	case scanner.TOK_FLOAT:
		return ast.New(ast.NODE_FLOAT, tok.Lexeme)
	case scanner.TOK_BOOLEAN:
		return ast.New(ast.NODE_BOOLVAL, tok.Lexeme)
	default:
		p.unexpected(tok, "an operand")
		return nil
	}
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/imp-lang/imp/pkg/common/parse"
	"github.com/imp-lang/imp/pkg/lang/ast"
	"github.com/imp-lang/imp/pkg/lang/scanner"
)

// maxNestingDepth bounds statement recursion so that pathologically nested
// input fails with a diagnostic instead of exhausting the call stack.
const maxNestingDepth = 256

// Parser consumes a token stream through a monotonic cursor with one-token
// lookahead and builds a parse tree. The first syntax error aborts the whole
// parse; there is no recovery and no partial tree.
type Parser struct {
	Tokens []parse.Token

	pos   int
	depth int
}

// Parse returns the program root: a BLOCK node whose two children are the
// DECLS list and the STMTS list.
func (p *Parser) Parse() (root *ast.Node, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			err = &syntaxError
		}
	}()

	program := ast.New(ast.NODE_BLOCK, "")
	program.Append(p.declarations())
	program.Append(p.statements())

	// statements() stops at '}'; anything left over is a stray token
	if !p.atEnd() {
		p.unexpected(p.peek(), "a statement")
	}

	return program, nil
}

// -- cursor

func (p *Parser) peek() parse.Token {
	if p.pos < len(p.Tokens) {
		return p.Tokens[p.pos]
	}

	end := parse.Token{Type: scanner.TOK_EOF}
	if len(p.Tokens) > 0 {
		end.Location = p.Tokens[len(p.Tokens)-1].Location
	}
	return end
}

func (p *Parser) previous() parse.Token {
	if p.pos > 0 {
		return p.Tokens[p.pos-1]
	}
	return parse.Token{Type: scanner.TOK_EOF}
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == scanner.TOK_EOF
}

func (p *Parser) advance() parse.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(t scanner.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) checkValue(t scanner.TokenType, lexeme string) bool {
	tok := p.peek()
	return tok.Type == t && tok.Lexeme == lexeme
}

func (p *Parser) match(t scanner.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchValue(t scanner.TokenType, lexeme string) bool {
	if p.checkValue(t, lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t scanner.TokenType, expected string) parse.Token {
	if p.check(t) {
		return p.advance()
	}
	p.unexpected(p.peek(), expected)
	return parse.Token{}
}

func (p *Parser) consumeValue(t scanner.TokenType, lexeme, expected string) parse.Token {
	if p.checkValue(t, lexeme) {
		return p.advance()
	}
	p.unexpected(p.peek(), expected)
	return parse.Token{}
}

// -- failure

func (p *Parser) fail(tok parse.Token, format string, args ...interface{}) {
	panic(parse.NewSyntaxError(tok, fmt.Sprintf(format, args...)))
}

// unexpected aborts the parse. An error token emitted by the lexer becomes
// fatal here, surfacing its own diagnostic.
func (p *Parser) unexpected(tok parse.Token, expected string) {
	switch tok.Type {
	case scanner.TOK_ERROR:
		p.fail(tok, "%s", tok.Lexeme)
	case scanner.TOK_EOF:
		p.fail(tok, "unexpected end of input, expected %s", expected)
	default:
		p.fail(tok, "expected %s, found '%s'", expected, tok.Lexeme)
	}
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > maxNestingDepth {
		p.fail(p.peek(), "nesting too deep (more than %d levels)", maxNestingDepth)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// -- declarations

func (p *Parser) checkDeclType() bool {
	return p.checkValue(scanner.TOK_KEYWORD, "int") ||
		p.checkValue(scanner.TOK_KEYWORD, "float") ||
		p.checkValue(scanner.TOK_KEYWORD, "bool")
}

// declarations parses zero or more declaration groups. The list stops, not
// fails, at the first statement-shaped token.
func (p *Parser) declarations() *ast.Node {
	decls := ast.New(ast.NODE_DECLS, "")
	for p.checkDeclType() {
		decls.Append(p.declarationGroup())
	}
	return decls
}

// declarationGroup parses one "type declarator *(',' declarator) ';'" group.
// A declarator is an identifier with an optional initializer; the initializer
// of a bool variable is parsed as a boolean expression, all others as
// arithmetic. A bare ';' right after the type is tolerated.
func (p *Parser) declarationGroup() *ast.Node {
	typ := p.advance()

	group := ast.New(ast.NODE_LIST, "")
	group.Append(ast.New(ast.NODE_TYPE, typ.Lexeme))

	// only a bare ';' right after the type declares nothing; once a
	// declarator (or a comma) has been seen, a name is mandatory
	if p.matchValue(scanner.TOK_SEPARATOR, ";") {
		return group
	}

	for {
		name := p.consume(scanner.TOK_IDENTIFIER, "a variable name in declaration")
		group.Append(ast.New(ast.NODE_ID, name.Lexeme))

		if p.matchValue(scanner.TOK_OPERATOR, "=") {
			if typ.Lexeme == "bool" {
				group.Append(p.booleanExpression())
			} else {
				group.Append(p.arithmeticExpression())
			}
		}

		if !p.matchValue(scanner.TOK_SEPARATOR, ",") {
			break
		}
	}

	p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after declaration")
	return group
}

// -- statements

func (p *Parser) statements() *ast.Node {
	stmts := ast.New(ast.NODE_STMTS, "")
	for !p.atEnd() && !p.checkValue(scanner.TOK_SEPARATOR, "}") {
		stmts.Append(p.statement())
	}
	return stmts
}

func (p *Parser) statement() *ast.Node {
	p.enter()
	defer p.leave()

	switch {
	case p.checkValue(scanner.TOK_SEPARATOR, "{"):
		return p.block()
	case p.checkValue(scanner.TOK_KEYWORD, "if"):
		return p.ifStatement()
	case p.checkValue(scanner.TOK_KEYWORD, "while"):
		return p.whileStatement()
	case p.checkValue(scanner.TOK_KEYWORD, "for"):
		return p.forStatement()
	case p.checkValue(scanner.TOK_KEYWORD, "read"):
		return p.readStatement()
	case p.checkValue(scanner.TOK_KEYWORD, "write"):
		return p.writeStatement()
	case p.check(scanner.TOK_IDENTIFIER):
		return p.assignment(false)
	case p.matchValue(scanner.TOK_SEPARATOR, ";"):
		return ast.New(ast.NODE_STMTS, "empty")
	default:
		p.unexpected(p.peek(), "a statement")
		return nil
	}
}

func (p *Parser) block() *ast.Node {
	p.consumeValue(scanner.TOK_SEPARATOR, "{", "'{' to start block")

	blk := ast.New(ast.NODE_BLOCK, "")
	for !p.atEnd() && !p.checkValue(scanner.TOK_SEPARATOR, "}") {
		blk.Append(p.statement())
	}

	p.consumeValue(scanner.TOK_SEPARATOR, "}", "'}' to end block")
	return blk
}

// bodyStatement parses a loop or branch body: a braced block, or a single
// statement.
func (p *Parser) bodyStatement() *ast.Node {
	if p.checkValue(scanner.TOK_SEPARATOR, "{") {
		return p.block()
	}
	return p.statement()
}

func (p *Parser) ifStatement() *ast.Node {
	p.advance()
	p.consumeValue(scanner.TOK_SEPARATOR, "(", "'(' after 'if'")

	node := ast.New(ast.NODE_IF, "")
	node.Append(p.booleanExpression())

	p.consumeValue(scanner.TOK_SEPARATOR, ")", "')' after condition")
	node.Append(p.bodyStatement())

	if p.matchValue(scanner.TOK_KEYWORD, "else") {
		node.Append(p.block())
	}

	return node
}

func (p *Parser) whileStatement() *ast.Node {
	p.advance()
	p.consumeValue(scanner.TOK_SEPARATOR, "(", "'(' after 'while'")

	node := ast.New(ast.NODE_WHILE, "")
	node.Append(p.booleanExpression())

	p.consumeValue(scanner.TOK_SEPARATOR, ")", "')' after condition")
	node.Append(p.bodyStatement())

	return node
}

// forStatement parses "for '(' init ';' cond ';' update ')' body". Each of
// the three clauses may be empty; an absent clause is a nil child.
func (p *Parser) forStatement() *ast.Node {
	p.advance()
	p.consumeValue(scanner.TOK_SEPARATOR, "(", "'(' after 'for'")

	node := ast.New(ast.NODE_FOR, "")

	switch {
	case p.matchValue(scanner.TOK_SEPARATOR, ";"):
		node.Append(nil)
	case p.checkDeclType():
		// declarationGroup consumes the terminating ';'
		node.Append(p.declarationGroup())
	default:
		node.Append(p.assignment(true))
		p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after for initializer")
	}

	if p.checkValue(scanner.TOK_SEPARATOR, ";") {
		node.Append(nil)
	} else {
		node.Append(p.booleanExpression())
	}
	p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after for condition")

	if p.checkValue(scanner.TOK_SEPARATOR, ")") {
		node.Append(nil)
	} else {
		node.Append(p.assignment(true))
	}
	p.consumeValue(scanner.TOK_SEPARATOR, ")", "')' after for clauses")

	node.Append(p.bodyStatement())
	return node
}

func (p *Parser) readStatement() *ast.Node {
	p.advance()
	p.consumeValue(scanner.TOK_SEPARATOR, "(", "'(' after 'read'")

	node := ast.New(ast.NODE_READ, "")
	for {
		name := p.consume(scanner.TOK_IDENTIFIER, "a variable name in read statement")
		node.Append(ast.New(ast.NODE_ID, name.Lexeme))
		if !p.matchValue(scanner.TOK_SEPARATOR, ",") {
			break
		}
	}

	p.consumeValue(scanner.TOK_SEPARATOR, ")", "')' after read arguments")
	p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after read statement")
	return node
}

// writeStatement accepts both "write(a, b);" and the bare single-identifier
// form "write a;".
func (p *Parser) writeStatement() *ast.Node {
	p.advance()

	node := ast.New(ast.NODE_WRITE, "")
	if p.matchValue(scanner.TOK_SEPARATOR, "(") {
		for {
			name := p.consume(scanner.TOK_IDENTIFIER, "a variable name in write statement")
			node.Append(ast.New(ast.NODE_ID, name.Lexeme))
			if !p.matchValue(scanner.TOK_SEPARATOR, ",") {
				break
			}
		}
		p.consumeValue(scanner.TOK_SEPARATOR, ")", "')' after write arguments")
	} else {
		name := p.consume(scanner.TOK_IDENTIFIER, "a variable name in write statement")
		node.Append(ast.New(ast.NODE_ID, name.Lexeme))
	}

	p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after write statement")
	return node
}

var assignmentOperators = map[string]struct{}{
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {},
}

// assignment parses "<id> op <expr> ;" or "<id> (++|--) ;". Inside a for
// clause the caller owns the terminator, so no ';' is consumed.
func (p *Parser) assignment(inFor bool) *ast.Node {
	name := p.consume(scanner.TOK_IDENTIFIER, "an identifier in assignment")
	target := ast.New(ast.NODE_ID, name.Lexeme)

	op := p.peek()
	if op.Type == scanner.TOK_OPERATOR && (op.Lexeme == "++" || op.Lexeme == "--") {
		p.advance()
		node := ast.New(ast.NODE_ASSIGN, op.Lexeme).Append(target)
		if !inFor {
			p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after assignment")
		}
		return node
	}

	if _, ok := assignmentOperators[op.Lexeme]; !ok || op.Type != scanner.TOK_OPERATOR {
		p.unexpected(op, "an assignment operator")
	}
	p.advance()

	node := ast.New(ast.NODE_ASSIGN, op.Lexeme).Append(target)

	if op.Lexeme == "=" && p.looksBoolean() {
		node.Append(p.booleanExpression())
	} else {
		node.Append(p.arithmeticExpression())
	}

	if !inFor {
		p.consumeValue(scanner.TOK_SEPARATOR, ";", "';' after assignment")
	}
	return node
}

// looksBoolean is the syntactic heuristic for the right-hand side of '=': a
// boolean literal, '!', an identifier, or '(' starts a boolean expression.
// Whether the expression is actually boolean-typed is a semantic question,
// out of scope here.
func (p *Parser) looksBoolean() bool {
	return p.check(scanner.TOK_BOOLEAN) ||
		p.checkValue(scanner.TOK_OPERATOR, "!") ||
		p.check(scanner.TOK_IDENTIFIER) ||
		p.checkValue(scanner.TOK_SEPARATOR, "(")
}

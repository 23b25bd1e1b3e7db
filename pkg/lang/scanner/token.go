/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

// Values below TOK_EOF double as the wire codes of the token dump format.
const (
	TOK_IDENTIFIER TokenType = iota
	TOK_INTEGER
	TOK_FLOAT
	TOK_BOOLEAN
	TOK_KEYWORD
	TOK_OPERATOR
	TOK_SEPARATOR
	TOK_ERROR

	// TOK_EOF marks the end of the token stream. It is synthesized by the
	// scanner and never written to a token dump.
	TOK_EOF
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_INTEGER:
		return "TOK_INTEGER"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_BOOLEAN:
		return "TOK_BOOLEAN"
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_OPERATOR:
		return "TOK_OPERATOR"
	case TOK_SEPARATOR:
		return "TOK_SEPARATOR"
	case TOK_ERROR:
		return "TOK_ERROR"
	case TOK_EOF:
		return "TOK_EOF"
	}
	return "TOK_UNKNOWN"
}

// Keyword table. true/false are boolean literals, not keywords.
var keywords = map[string]TokenType{
	"int":   TOK_KEYWORD,
	"float": TOK_KEYWORD,
	"bool":  TOK_KEYWORD,
	"if":    TOK_KEYWORD,
	"else":  TOK_KEYWORD,
	"while": TOK_KEYWORD,
	"for":   TOK_KEYWORD,
	"read":  TOK_KEYWORD,
	"write": TOK_KEYWORD,
	"true":  TOK_BOOLEAN,
	"false": TOK_BOOLEAN,
}

// Two-character operators, tested before the one-character tables so that
// maximal munch always wins.
var doubleOperators = map[string]struct{}{
	"==": {}, "!=": {}, "<=": {}, ">=": {},
	"&&": {}, "||": {},
	"++": {}, "--": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {},
	"<<": {}, ">>": {},
}

var singleOperators = map[rune]struct{}{
	'+': {}, '-': {}, '*': {}, '/': {}, '%': {},
	'=': {}, '<': {}, '>': {}, '!': {},
	'&': {}, '|': {}, '^': {}, '~': {},
}

var separators = map[rune]struct{}{
	';': {}, ',': {}, ':': {},
	'(': {}, ')': {},
	'{': {}, '}': {},
	'[': {}, ']': {},
}

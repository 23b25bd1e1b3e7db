/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/imp-lang/imp/pkg/common/parse"
)

// Scanner turns imp source text into a stream of tokens. Consumption is
// monotonic; Emit never rewinds. Malformed lexemes are emitted inline as
// TOK_ERROR tokens whose Lexeme is the diagnostic message, and scanning
// continues after them.
type Scanner struct {
	Input string
	Pos   int

	line   int
	column int
}

// Emit returns the next token on Scanner.Input, or a TOK_EOF token once the
// input is exhausted.
func (s *Scanner) Emit() parse.Token {
	if s.line == 0 {
		s.line, s.column = 1, 1
	}

	s.skipMeaningless()

	loc := parse.Location{Line: s.line, Column: s.column}

	r := s.peek()
	switch {
	case r == eof:
		return parse.Token{Type: TOK_EOF, Location: loc}
	case unicode.IsLetter(r) || r == '_':
		return s.scanWord(loc)
	case unicode.IsDigit(r):
		return s.scanNumber(loc)
	default:
		return s.scanSymbol(loc)
	}
}

const eof = rune(0)

func (s *Scanner) peek() rune {
	if s.Pos >= len(s.Input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
	return r
}

func (s *Scanner) advance() rune {
	if s.Pos >= len(s.Input) {
		return eof
	}
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	s.Pos += width
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

// skipMeaningless consumes whitespace, line comments ("//" or "#") and block
// comments. An unterminated block comment swallows the rest of the input.
func (s *Scanner) skipMeaningless() {
	for {
		r := s.peek()

		switch {
		case r == '#' || strings.HasPrefix(s.Input[s.Pos:], "//"):
			for s.peek() != '\n' && s.peek() != eof {
				s.advance()
			}
		case strings.HasPrefix(s.Input[s.Pos:], "/*"):
			s.advance()
			s.advance()
			for !strings.HasPrefix(s.Input[s.Pos:], "*/") {
				if s.peek() == eof {
					return
				}
				s.advance()
			}
			s.advance()
			s.advance()
		case unicode.IsSpace(r):
			s.advance()
		default:
			return
		}
	}
}

// scanWord recognizes an identifier, keyword, or boolean literal.
func (s *Scanner) scanWord(loc parse.Location) parse.Token {
	var value strings.Builder
	for r := s.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = s.peek() {
		value.WriteRune(s.advance())
	}

	lexeme := value.String()
	if typ, ok := keywords[lexeme]; ok {
		return parse.Token{Type: typ, Lexeme: lexeme, Location: loc}
	}
	return parse.Token{Type: TOK_IDENTIFIER, Lexeme: lexeme, Location: loc}
}

// scanNumber recognizes an integer or float literal. Rather than silently
// truncating a bad lexeme, it keeps consuming to the end of the run so the
// stream position stays consistent, and emits an error token:
//
//   - a digit-leading run ending in letters ("5x") is an illegal identifier
//   - a missing fraction, a second dot, or letters after a dotted number
//     ("1.", "1.2.3", "1.5e") is an illegal number format
func (s *Scanner) scanNumber(loc parse.Location) parse.Token {
	var value strings.Builder
	malformed := false
	sawDot := false

	for unicode.IsDigit(s.peek()) {
		value.WriteRune(s.advance())
	}

	if s.peek() == '.' {
		value.WriteRune(s.advance())
		sawDot = true

		if !unicode.IsDigit(s.peek()) {
			malformed = true
		}
		for unicode.IsDigit(s.peek()) {
			value.WriteRune(s.advance())
		}

		if s.peek() == '.' {
			malformed = true
			value.WriteRune(s.advance())
			for unicode.IsDigit(s.peek()) {
				value.WriteRune(s.advance())
			}
		}
	}

	if r := s.peek(); unicode.IsLetter(r) || r == '_' {
		for r := s.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = s.peek() {
			value.WriteRune(s.advance())
		}
		if !sawDot {
			return s.errorToken(loc, "illegal identifier (starts with digit): %s", value.String())
		}
		malformed = true
	}

	if malformed {
		return s.errorToken(loc, "illegal number format: %s", value.String())
	}

	typ := TOK_INTEGER
	if sawDot {
		typ = TOK_FLOAT
	}
	return parse.Token{Type: typ, Lexeme: value.String(), Location: loc}
}

// scanSymbol recognizes an operator or separator, preferring the two-character
// operator table over the one-character tables.
func (s *Scanner) scanSymbol(loc parse.Location) parse.Token {
	if s.Pos+2 <= len(s.Input) {
		pair := s.Input[s.Pos : s.Pos+2]
		if _, ok := doubleOperators[pair]; ok {
			s.advance()
			s.advance()
			return parse.Token{Type: TOK_OPERATOR, Lexeme: pair, Location: loc}
		}
	}

	r := s.advance()
	if _, ok := singleOperators[r]; ok {
		return parse.Token{Type: TOK_OPERATOR, Lexeme: string(r), Location: loc}
	}
	if _, ok := separators[r]; ok {
		return parse.Token{Type: TOK_SEPARATOR, Lexeme: string(r), Location: loc}
	}

	return s.errorToken(loc, "illegal character: %q", r)
}

func (s *Scanner) errorToken(loc parse.Location, format string, args ...interface{}) parse.Token {
	return parse.Token{
		Type:     TOK_ERROR,
		Lexeme:   fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// ScanAll drains the scanner, returning every token up to (and excluding)
// TOK_EOF.
func (s *Scanner) ScanAll() []parse.Token {
	var tokens []parse.Token
	for {
		tok := s.Emit()
		if tok.Type == TOK_EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"testing"
)

func TestEmitIdentifiers(t *testing.T) {
	s := Scanner{Input: "variable a3 _tmp"}

	wantLexemes := []string{"variable", "a3", "_tmp"}

	for _, want := range wantLexemes {
		tok := s.Emit()

		if tok.Type != TOK_IDENTIFIER {
			t.Error("wanted TOK_IDENTIFIER, got", tok.Type.ToString())
		}

		if tok.Lexeme != want {
			t.Errorf("wanted '%s', got '%s'", want, tok.Lexeme)
		}
	}
}

func TestEmitKeywordsAndBooleans(t *testing.T) {
	s := Scanner{Input: "int while for true false"}

	wantTypes := []TokenType{TOK_KEYWORD, TOK_KEYWORD, TOK_KEYWORD, TOK_BOOLEAN, TOK_BOOLEAN}
	wantLexemes := []string{"int", "while", "for", "true", "false"}

	for i := range wantTypes {
		tok := s.Emit()

		if tok.Type != wantTypes[i] {
			t.Error("wanted", wantTypes[i].ToString(), ", got", tok.Type.ToString())
		}

		if tok.Lexeme != wantLexemes[i] {
			t.Errorf("wanted '%s', got '%s'", wantLexemes[i], tok.Lexeme)
		}
	}
}

func TestEmitNumbers(t *testing.T) {
	s := Scanner{Input: "12345 3.14 0.5 54"}

	wantTypes := []TokenType{TOK_INTEGER, TOK_FLOAT, TOK_FLOAT, TOK_INTEGER}
	wantLexemes := []string{"12345", "3.14", "0.5", "54"}

	for i := range wantTypes {
		tok := s.Emit()

		if tok.Type != wantTypes[i] {
			t.Error("wanted", wantTypes[i].ToString(), ", got", tok.Type.ToString())
		}

		if tok.Lexeme != wantLexemes[i] {
			t.Errorf("wanted '%s', got '%s'", wantLexemes[i], tok.Lexeme)
		}
	}
}

func TestEmitMaximalMunch(t *testing.T) {
	s := Scanner{Input: "== != <= >= && || ++ -- += -= *= /= << >>"}

	wantLexemes := []string{"==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=", "<<", ">>"}

	for _, want := range wantLexemes {
		tok := s.Emit()

		if tok.Type != TOK_OPERATOR {
			t.Error("wanted TOK_OPERATOR, got", tok.Type.ToString())
		}

		if tok.Lexeme != want {
			t.Errorf("wanted '%s', got '%s'", want, tok.Lexeme)
		}
	}
}

func TestEmitSingleSymbols(t *testing.T) {
	s := Scanner{Input: "+ - * / % = < > ! & | ^ ~ ; , ( ) { } [ ] :"}

	wantOperators := 13
	for i := 0; i < wantOperators; i++ {
		tok := s.Emit()
		if tok.Type != TOK_OPERATOR {
			t.Errorf("token %d: wanted TOK_OPERATOR, got %s '%s'", i, tok.Type.ToString(), tok.Lexeme)
		}
	}

	wantSeparators := []string{";", ",", "(", ")", "{", "}", "[", "]", ":"}
	for _, want := range wantSeparators {
		tok := s.Emit()
		if tok.Type != TOK_SEPARATOR {
			t.Error("wanted TOK_SEPARATOR, got", tok.Type.ToString())
		}
		if tok.Lexeme != want {
			t.Errorf("wanted '%s', got '%s'", want, tok.Lexeme)
		}
	}
}

func TestEmitErrorTokens(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5x", "illegal identifier (starts with digit): 5x"},
		{"12abc", "illegal identifier (starts with digit): 12abc"},
		{"1.", "illegal number format: 1."},
		{"1.2.3", "illegal number format: 1.2.3"},
		{"12.5abc", "illegal number format: 12.5abc"},
		{"$", "illegal character: '$'"},
	}

	for _, test := range tests {
		s := Scanner{Input: test.input}
		tok := s.Emit()

		if tok.Type != TOK_ERROR {
			t.Errorf("%s: wanted TOK_ERROR, got %s", test.input, tok.Type.ToString())
		}

		if tok.Lexeme != test.want {
			t.Errorf("%s: wanted '%s', got '%s'", test.input, test.want, tok.Lexeme)
		}
	}
}

func TestErrorTokenDoesNotAbortScanning(t *testing.T) {
	s := Scanner{Input: "int 5x;"}
	tokens := s.ScanAll()

	wantTypes := []TokenType{TOK_KEYWORD, TOK_ERROR, TOK_SEPARATOR}

	if len(tokens) != len(wantTypes) {
		t.Fatalf("wanted %d tokens, got %d", len(wantTypes), len(tokens))
	}

	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token %d: wanted %s, got %s", i, want.ToString(), tokens[i].Type.ToString())
		}
	}
}

func TestPositions(t *testing.T) {
	s := Scanner{Input: "int x\n  y = 1"}

	wantPositions := []struct {
		line   int
		column int
	}{
		{1, 1}, {1, 5}, {2, 3}, {2, 5}, {2, 7},
	}

	for i, want := range wantPositions {
		tok := s.Emit()

		if tok.Location.Line != want.line || tok.Location.Column != want.column {
			t.Errorf("token %d: wanted %d:%d, got %d:%d",
				i, want.line, want.column, tok.Location.Line, tok.Location.Column)
		}
	}
}

func TestComments(t *testing.T) {
	s := Scanner{Input: "a // one\n b # two\n /* three\n four */ c"}

	wantLexemes := []string{"a", "b", "c"}
	wantLines := []int{1, 2, 4}

	for i, want := range wantLexemes {
		tok := s.Emit()

		if tok.Type != TOK_IDENTIFIER || tok.Lexeme != want {
			t.Errorf("wanted identifier '%s', got %s '%s'", want, tok.Type.ToString(), tok.Lexeme)
		}

		if tok.Location.Line != wantLines[i] {
			t.Errorf("%s: wanted line %d, got %d", want, wantLines[i], tok.Location.Line)
		}
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	s := Scanner{Input: "a /* never closed"}

	tok := s.Emit()
	if tok.Type != TOK_IDENTIFIER || tok.Lexeme != "a" {
		t.Errorf("wanted identifier 'a', got %s '%s'", tok.Type.ToString(), tok.Lexeme)
	}

	// the dangling comment swallows the rest of the input without an error
	tok = s.Emit()
	if tok.Type != TOK_EOF {
		t.Error("wanted TOK_EOF, got", tok.Type.ToString())
	}
}

func TestEmitPastEnd(t *testing.T) {
	s := Scanner{Input: "x"}
	s.Emit()

	for i := 0; i < 3; i++ {
		if tok := s.Emit(); tok.Type != TOK_EOF {
			t.Error("wanted TOK_EOF, got", tok.Type.ToString())
		}
	}
}

func TestScanAll(t *testing.T) {
	s := Scanner{Input: "int x = 1;"}
	tokens := s.ScanAll()

	if len(tokens) != 5 {
		t.Fatalf("wanted 5 tokens, got %d", len(tokens))
	}

	var lexemes []string
	for _, tok := range tokens {
		lexemes = append(lexemes, tok.Lexeme)
	}

	if got := strings.Join(lexemes, " "); got != "int x = 1 ;" {
		t.Errorf("wanted 'int x = 1 ;', got '%s'", got)
	}
}

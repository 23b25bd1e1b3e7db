/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/imp-lang/imp/pkg/lang/scanner"
)

func TestWrite(t *testing.T) {
	s := scanner.Scanner{Input: "int x = 1;"}

	var buf bytes.Buffer
	if err := Write(&buf, s.ScanAll()); err != nil {
		t.Fatal(err)
	}

	want := `(4, "int", 1, 1)
(0, "x", 1, 5)
(5, "=", 1, 7)
(1, "1", 1, 9)
(6, ";", 1, 10)
`

	if got := buf.String(); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	s := scanner.Scanner{Input: "int x = 1; while (x < 5) { x = x + 1; }"}
	tokens := s.ScanAll()

	var buf bytes.Buffer
	if err := Write(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	decoded, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(decoded) != len(tokens) {
		t.Fatalf("wanted %d tokens, got %d", len(tokens), len(decoded))
	}

	for i := range tokens {
		if decoded[i] != tokens[i] {
			t.Errorf("token %d: wanted %+v, got %+v", i, tokens[i], decoded[i])
		}
	}
}

func TestReadTolerance(t *testing.T) {
	input := `
(4, "int", 1, 1)

this line is garbage
(0, x)
(6, ";")
`

	tokens, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	wantTypes := []scanner.TokenType{scanner.TOK_KEYWORD, scanner.TOK_IDENTIFIER, scanner.TOK_SEPARATOR}
	wantLexemes := []string{"int", "x", ";"}

	if len(tokens) != len(wantTypes) {
		t.Fatalf("wanted %d tokens, got %d", len(wantTypes), len(tokens))
	}

	for i := range wantTypes {
		if tokens[i].Type != wantTypes[i] {
			t.Errorf("token %d: wanted %s, got %s", i, wantTypes[i].ToString(), tokens[i].Type.ToString())
		}
		if tokens[i].Lexeme != wantLexemes[i] {
			t.Errorf("token %d: wanted '%s', got '%s'", i, wantLexemes[i], tokens[i].Lexeme)
		}
	}

	// the 2-field variant carries no position
	if tokens[1].Location.Line != 0 {
		t.Error("wanted a zero location for the 2-field variant")
	}
}

func TestReadStripsEmbeddedWhitespace(t *testing.T) {
	tokens, err := Read(strings.NewReader(`(0, " fo o ", 1, 2)`))
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 1 || tokens[0].Lexeme != "foo" {
		t.Fatalf("wanted a single 'foo' token, got %+v", tokens)
	}
}

func TestReadCommaLexeme(t *testing.T) {
	tokens, err := Read(strings.NewReader(`(6, ",", 1, 5)`))
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 1 || tokens[0].Lexeme != "," {
		t.Fatalf("wanted a single ',' token, got %+v", tokens)
	}

	if tokens[0].Location.Line != 1 || tokens[0].Location.Column != 5 {
		t.Errorf("wanted 1:5, got %d:%d", tokens[0].Location.Line, tokens[0].Location.Column)
	}
}

func TestReadStopsAtEndMarker(t *testing.T) {
	input := `(0, "x", 1, 1)
(7, "", 1, 2)
(0, "never", 1, 3)
`

	tokens, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 1 || tokens[0].Lexeme != "x" {
		t.Fatalf("wanted the read to stop at the end marker, got %+v", tokens)
	}
}

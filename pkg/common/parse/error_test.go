/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"testing"
)

func TestSyntaxErrorMessage(t *testing.T) {
	err := SyntaxError{Location: Location{Line: 3, Column: 7}, Message: "expected ';'"}

	want := "3:7: expected ';'"
	if got := err.Error(); got != want {
		t.Errorf("wanted '%s', got '%s'", want, got)
	}
}

func TestFormatError(t *testing.T) {
	err := NewSyntaxError(
		Token{Lexeme: "5x", Location: Location{Line: 1, Column: 5}},
		"illegal identifier (starts with digit): 5x",
	)

	want := "Syntax error found on line 1:\nint 5x;\n    ^ illegal identifier (starts with digit): 5x\n"
	if got := err.FormatError("int 5x;"); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatErrorSecondLine(t *testing.T) {
	input := "int x;\nx = ;"
	err := SyntaxError{Location: Location{Line: 2, Column: 5}, Message: "empty expression"}

	want := "Syntax error found on line 2:\nx = ;\n    ^ empty expression\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatErrorMultibyteLine(t *testing.T) {
	input := "π = ;"
	err := SyntaxError{Location: Location{Line: 1, Column: 5}, Message: "empty expression"}

	want := "Syntax error found on line 1:\nπ = ;\n    ^ empty expression\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatErrorColumnPastMultibyteLine(t *testing.T) {
	// "αβγ" is 3 runes but 6 bytes; a column beyond the rune count must
	// clamp to the start rather than drawing the caret past the line
	err := SyntaxError{Location: Location{Line: 1, Column: 5}, Message: "unexpected end of input"}

	want := "Syntax error found on line 1:\nαβγ\n^ unexpected end of input\n"
	if got := err.FormatError("αβγ"); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatErrorWithoutSource(t *testing.T) {
	err := SyntaxError{Location: Location{Line: 4, Column: 2}, Message: "unexpected end of input"}

	if got := err.FormatError(""); got != err.Error() {
		t.Errorf("wanted the plain message without source, got '%s'", got)
	}
}

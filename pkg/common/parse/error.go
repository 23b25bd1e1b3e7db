/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", s.Location.Line, s.Location.Column, s.Message)
}

// FormatError renders a caret diagnostic pointing at the offending column of
// the offending source line. When input is empty (e.g. parsing a token dump
// with no source at hand), only the positioned message is returned.
func (s *SyntaxError) FormatError(input string) string {
	if input == "" || s.Location.Line < 1 {
		return s.Error()
	}

	lines := strings.Split(input, "\n")
	if s.Location.Line > len(lines) {
		return s.Error()
	}
	line := lines[s.Location.Line-1]

	// columns are counted in runes, so the bound must be too
	indent := s.Location.Column - 1
	if indent < 0 || indent > utf8.RuneCountInString(line) {
		indent = 0
	}

	errorString := fmt.Sprintf("Syntax error found on line %d:\n", s.Location.Line)
	errorString += line
	errorString += fmt.Sprintf("\n%s^ ", strings.Repeat(" ", indent))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location is the 1-based source position of a token's first character.
type Location struct {
	Line   int
	Column int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}

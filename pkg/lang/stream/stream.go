/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package stream reads and writes the plain-text token dump that connects
// the lexer to the parser: one token per line, formatted as
//
//	(kind, "text", line, column)
//
// where kind is the numeric token code. The reader is deliberately tolerant:
// lines without both parens are skipped, the position fields are optional,
// and values may be quoted or unquoted.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/imp-lang/imp/pkg/common/parse"
	"github.com/imp-lang/imp/pkg/lang/scanner"
)

// Write encodes tokens one per line. TOK_EOF is an in-memory marker only and
// is never written.
func Write(w io.Writer, tokens []parse.Token) error {
	for i, tok := range tokens {
		typ, ok := tok.Type.(scanner.TokenType)
		if !ok {
			return errors.Errorf("token %d: unencodable token type %s", i, tok.Type.ToString())
		}
		if typ == scanner.TOK_EOF {
			continue
		}

		_, err := fmt.Fprintf(w, "(%d, \"%s\", %d, %d)\n",
			int(typ), tok.Lexeme, tok.Location.Line, tok.Location.Column)
		if err != nil {
			return errors.Wrap(err, "writing token stream")
		}
	}
	return nil
}

// Read decodes a token dump. An error-kind token with an empty value is the
// historical end-of-stream marker and terminates the read.
func Read(r io.Reader) ([]parse.Token, error) {
	var tokens []parse.Token

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		if !strings.Contains(line, "(") || !strings.Contains(line, ")") {
			continue
		}

		tok, ok := decodeLine(line)
		if !ok {
			continue
		}
		if tok.Type == scanner.TOK_ERROR && tok.Lexeme == "" {
			break
		}

		tokens = append(tokens, tok)
	}

	if err := lines.Err(); err != nil {
		return nil, errors.Wrap(err, "reading token stream")
	}
	return tokens, nil
}

func decodeLine(line string) (parse.Token, bool) {
	open := strings.Index(line, "(")
	comma := strings.Index(line, ",")
	close := strings.LastIndex(line, ")")
	if comma < 0 || comma < open || close < comma {
		return parse.Token{}, false
	}

	code, err := strconv.Atoi(strings.TrimSpace(line[open+1 : comma]))
	if err != nil {
		return parse.Token{}, false
	}

	typ := scanner.TOK_ERROR
	if code >= int(scanner.TOK_IDENTIFIER) && code <= int(scanner.TOK_ERROR) {
		typ = scanner.TokenType(code)
	}

	value, loc := splitFields(line[comma+1 : close])

	return parse.Token{Type: typ, Lexeme: value, Location: loc}, true
}

// splitFields separates the value from the optional trailing "line, column"
// pair. The position fields are recognized from the right so that a value is
// never mistaken for one.
func splitFields(rest string) (string, parse.Location) {
	fields := strings.Split(rest, ",")

	var loc parse.Location
	if len(fields) >= 3 {
		lineNo, lineErr := strconv.Atoi(strings.TrimSpace(fields[len(fields)-2]))
		colNo, colErr := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if lineErr == nil && colErr == nil {
			loc = parse.Location{Line: lineNo, Column: colNo}
			fields = fields[:len(fields)-2]
		}
	}

	value := strings.TrimSpace(strings.Join(fields, ","))
	value = strings.Trim(value, `"'`)
	value = strings.Join(strings.Fields(value), "")

	return value, loc
}

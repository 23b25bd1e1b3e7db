/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/imp-lang/imp/pkg/common/parse"
)

// OutputWriter renders a token list for human or machine consumption. This is
// presentation only; the parser consumes the dump format in pkg/lang/stream.
type OutputWriter interface {
	Write(tokens []parse.Token)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func headers() []string {
	return []string{"type", "lexeme", "line", "column"}
}

func values(tokens []parse.Token) [][]string {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, []string{
			tok.Type.ToString(),
			tok.Lexeme,
			strconv.Itoa(tok.Location.Line),
			strconv.Itoa(tok.Location.Column),
		})
	}
	return rows
}

func (w CSVWriter) Write(tokens []parse.Token) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(headers())
	wtr.WriteAll(values(tokens))
}

func (w TextWriter) Write(tokens []parse.Token) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(headers())
	table.AppendBulk(values(tokens))
	table.Render()
}

type tokenRecord struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (w JSONWriter) Write(tokens []parse.Token) {
	records := make([]tokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		records = append(records, tokenRecord{
			Type:   tok.Type.ToString(),
			Lexeme: tok.Lexeme,
			Line:   tok.Location.Line,
			Column: tok.Location.Column,
		})
	}

	enc := json.NewEncoder(w.w)
	enc.Encode(records)
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imp-lang/imp/pkg/lang/ast"
	"github.com/imp-lang/imp/pkg/lang/parser"
	"github.com/imp-lang/imp/pkg/lang/scanner"
	replpkg "github.com/imp-lang/imp/pkg/repl"
)

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactively lex and parse imp programs",

		Run: func(cmd *cobra.Command, args []string) {
			viper.BindPFlag("impc.print", cmd.Flags().Lookup("print"))
			viper.BindPFlag("impc.output", cmd.Flags().Lookup("output"))

			readlinePrompt()
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().Bool("print", false, "Print the token list before the tree dump")
	Command.Flags().StringP("output", "o", "text", "Output format of the printed token list [csv, json, text]")
}

func readlinePrompt() {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("int"),
		readline.PcItem("float"),
		readline.PcItem("bool"),
		readline.PcItem("if"),
		readline.PcItem("while"),
		readline.PcItem("for"),
		readline.PcItem("read"),
		readline.PcItem("write"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if line == "" {
			continue
		}
		if strings.ToUpper(line) == "HELP" {
			fmt.Println("enter an imp program on one line, e.g.: int x = 1; while (x < 5) { x = x + 1; }")
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		s := scanner.Scanner{Input: line}
		tokens := s.ScanAll()

		if viper.GetBool("impc.print") {
			w := replpkg.NewOutputWriter(os.Stdout, viper.GetString("impc.output"))
			w.Write(tokens)
		}

		p := parser.Parser{Tokens: tokens}
		tree, err := p.Parse()
		if err != nil {
			syntaxError, ok := err.(interface{ FormatError(string) string })
			if ok {
				fmt.Print(syntaxError.FormatError(line))
			} else {
				fmt.Println(err)
			}
			continue
		}

		fmt.Print(ast.Dump(tree))
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lex

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imp-lang/imp/pkg/lang/scanner"
	"github.com/imp-lang/imp/pkg/lang/stream"
	"github.com/imp-lang/imp/pkg/repl"
)

var (
	Command = &cobra.Command{
		Use:   "lex",
		Short: "Tokenize an imp source file into a token stream dump",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			// Bound here rather than in init: the parse command shares the
			// impc.tokens key, and the binding must follow the command
			// actually running.
			viper.BindPFlag("impc.source", cmd.Flags().Lookup("source"))
			viper.BindPFlag("impc.tokens", cmd.Flags().Lookup("tokens"))
			viper.BindPFlag("impc.print", cmd.Flags().Lookup("print"))
			viper.BindPFlag("impc.output", cmd.Flags().Lookup("output"))

			sourcePath := viper.GetString("impc.source")
			tokensPath := viper.GetString("impc.tokens")

			source, err := os.ReadFile(sourcePath)
			if err != nil {
				log.Fatal().Err(err).Str("path", sourcePath).Msg("unable to read source file")
			}
			log.Debug().
				Str("path", sourcePath).
				Str("size", humanize.Bytes(uint64(len(source)))).
				Msg("read source file")

			s := scanner.Scanner{Input: string(source)}
			tokens := s.ScanAll()

			out, err := os.Create(tokensPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", tokensPath).Msg("unable to create token stream file")
			}
			defer out.Close()

			if err := stream.Write(out, tokens); err != nil {
				log.Fatal().Err(err).Msg("unable to write token stream")
			}
			log.Info().Int("tokens", len(tokens)).Str("path", tokensPath).Msg("token stream written")

			if viper.GetBool("impc.print") {
				w := repl.NewOutputWriter(os.Stdout, viper.GetString("impc.output"))
				w.Write(tokens)
			}
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("source", "s", "source.txt", "Path of the imp source file to tokenize")
	Command.Flags().StringP("tokens", "t", "lex_out.txt", "Path of the token stream file to write")
	Command.Flags().Bool("print", false, "Print the token list to stdout")
	Command.Flags().StringP("output", "o", "text", "Output format of the printed token list [csv, json, text]")
}

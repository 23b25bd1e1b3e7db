/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imp-lang/imp/pkg/lang/ast"
	"github.com/imp-lang/imp/pkg/lang/parser"
	"github.com/imp-lang/imp/pkg/lang/stream"
)

var (
	Command = &cobra.Command{
		Use:   "parse",
		Short: "Parse a token stream dump into an indented parse-tree dump",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			// Bound here rather than in init: the lex command shares the
			// impc.tokens key, and the binding must follow the command
			// actually running.
			viper.BindPFlag("impc.tokens", cmd.Flags().Lookup("tokens"))
			viper.BindPFlag("impc.tree", cmd.Flags().Lookup("tree"))

			tokensPath := viper.GetString("impc.tokens")
			treePath := viper.GetString("impc.tree")

			in, err := os.Open(tokensPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", tokensPath).Msg("unable to open token stream file")
			}
			defer in.Close()

			tokens, err := stream.Read(in)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to read token stream")
			}
			log.Debug().Int("tokens", len(tokens)).Msg("token stream loaded")

			p := parser.Parser{Tokens: tokens}
			tree, err := p.Parse()
			if err != nil {
				// The parsing core never exits; reporting and exit policy
				// belong to this driver.
				log.Error().Msg(err.Error())
				os.Exit(1)
			}

			if err := os.WriteFile(treePath, []byte(ast.Dump(tree)), 0644); err != nil {
				log.Fatal().Err(err).Str("path", treePath).Msg("unable to write tree dump")
			}
			log.Info().Str("path", treePath).Msg("parse tree written")
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("tokens", "t", "lex_out.txt", "Path of the token stream file to read")
	Command.Flags().StringP("tree", "T", "parse_out.txt", "Path of the parse-tree dump to write")
}

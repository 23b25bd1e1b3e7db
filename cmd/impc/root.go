/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package impc

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imp-lang/imp/cmd/impc/lex"
	"github.com/imp-lang/imp/cmd/impc/parse"
	"github.com/imp-lang/imp/cmd/impc/repl"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "impc",
		Short: "impc is the compiler front end for the imp language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the impc config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("impc.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("impc.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("impc version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	lex.Command.Version = rootCmd.Version
	parse.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(lex.Command)
	rootCmd.AddCommand(parse.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}

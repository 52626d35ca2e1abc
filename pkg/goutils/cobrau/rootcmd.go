/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package cobrau

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

var logLevels = map[string]logger.TLogLevel{
	"error":   logger.LogLevelError,
	"warning": logger.LogLevelWarning,
	"info":    logger.LogLevelInfo,
	"verbose": logger.LogLevelVerbose,
	"trace":   logger.LogLevelTrace,
}

// Sets logger level by name: error, warning, info, verbose or trace
func SetLogLevel(name string) error {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown log level «%s»", name)
	}
	logger.SetLogLevel(level)
	return nil
}

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

// Returns root command with subcommands, verbosity flags and `version` command.
//
// Verbosity flags take precedence over levels set by subcommands
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.InitDefaultCompletionCmd()
	return rootCmd
}

// Applies --trace and --verbose flags of the command
func ApplyVerbosity(cmd *cobra.Command) {
	if ok, _ := cmd.Flags().GetBool("trace"); ok {
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
	} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
}

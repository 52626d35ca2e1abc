/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/config"
	"github.com/voedger/graphcheck/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	params := &cliParams{}
	rootCmd := cobrau.PrepareRootCmd(
		appName,
		"Validates branched temporal graph data against schema changes",
		args,
		ver,
		newCheckCmd(params),
		newMigrateCmd(params),
		newValidateCmd(params),
		newImportCmd(params),
		newConstraintsCmd(params),
		newServeCmd(params),
	)
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&params.ConfigPath, "config", "c", "", "Path to config file")
	flags.StringVar(&params.Overrides.Storage.Driver, "storage", "", "Storage driver: mem, bbolt or neo4j")
	flags.StringVar(&params.Overrides.Storage.Path, "storage-path", "", "Path to bbolt database file")
	flags.StringVar(&params.Overrides.Storage.Neo4j.URI, "neo4j-uri", "", "Neo4j URI")
	flags.StringArrayVar(&params.Overrides.Schema.Files, "schema", nil, "Current schema file, may be repeated")
	flags.StringArrayVar(&params.Overrides.Fixtures, "fixture", nil, "Fixture file to load into in-memory storage, may be repeated")
	flags.StringVar(&params.Overrides.Log.Level, "log-level", "", "Log level: error, warning, info, verbose or trace")
	return rootCmd
}

// Defaults, then config file, then flags
func loadConfig(params *cliParams) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if params.ConfigPath != "" {
		fileCfg, err := config.LoadFromFile(params.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	cfg.Merge(&params.Overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWithApp(cmd *cobra.Command, params *cliParams, f func(ctx context.Context, app *wiredApp) error) error {
	cfg, err := loadConfig(params)
	if err != nil {
		return err
	}
	if err := cobrau.SetLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	cobrau.ApplyVerbosity(cmd)
	app, cleanup, err := wireApp(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to wire %s: %w", appName, err)
	}
	defer cleanup()
	return f(cmd.Context(), app)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/config"
)

func newImportCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "import <fixture-file>...",
		Short: "Write fixture files into the storage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(ctx context.Context, app *wiredApp) error {
				if app.Config.Storage.Driver == config.DriverMem {
					logger.Warning("in-memory storage is not persisted, imported data is lost on exit")
				}
				res, err := importFixtures(ctx, app.Store, app.Schemas, args...)
				if err != nil {
					return err
				}
				nodes, rels := 0, 0
				for _, r := range res {
					nodes += len(r.Nodes)
					rels += len(r.Relationships)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) imported: %d node(s), %d relationship(s)\n", len(res), nodes, rels)
				return nil
			})
		},
	}
}

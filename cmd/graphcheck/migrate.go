/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/graphcheck/pkg/schema"
)

func newMigrateCmd(params *cliParams) *cobra.Command {
	var branch, at string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "migrate <new-schema-file>...",
		Short: "Check data against all changes between current and new schemas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(ctx context.Context, app *wiredApp) error {
				t, err := parseAt(at)
				if err != nil {
					return err
				}
				schemas, err := schema.LoadFiles(args...)
				if err != nil {
					return err
				}
				res, err := app.migrate(ctx, migrateRequest{Branch: branch, At: t, Schemas: schemas})
				if err != nil {
					return err
				}
				if asJSON {
					if err := printJSON(cmd.OutOrStdout(), res); err != nil {
						return err
					}
				} else {
					for _, r := range res.Results {
						printCheck(cmd.OutOrStdout(), r)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%d constraint(s) checked, %d violation(s)\n", len(res.Results), res.Violations)
				}
				return violationsErr(res.Violations)
			})
		},
	}
	addBranchFlags(cmd, &branch, &at)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

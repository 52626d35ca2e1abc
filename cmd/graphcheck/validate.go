/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newValidateCmd(params *cliParams) *cobra.Command {
	var branch string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate data against regex and unique properties of the current schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(ctx context.Context, app *wiredApp) error {
				vv, err := app.validate(ctx, branch)
				if err != nil {
					return err
				}
				if asJSON {
					if err := printJSON(cmd.OutOrStdout(), vv); err != nil {
						return err
					}
				} else {
					printViolations(cmd.OutOrStdout(), vv)
				}
				return violationsErr(len(vv))
			})
		},
	}
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to validate, default branch if empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

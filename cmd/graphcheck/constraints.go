/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newConstraintsCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "constraints",
		Short: "List supported constraint names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(_ context.Context, app *wiredApp) error {
				for _, name := range app.Constraints.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}

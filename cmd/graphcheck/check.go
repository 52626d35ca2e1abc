/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voedger/graphcheck/pkg/schema"
)

// Flags of `check`
type checkParams struct {
	Kind       string
	Field      string
	Property   string
	Constraint string
	NewSchema  string
	Branch     string
	At         string
	JSON       bool
}

func newCheckCmd(params *cliParams) *cobra.Command {
	p := checkParams{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check data against a single property of the new schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(ctx context.Context, app *wiredApp) error {
				req, err := p.request(app)
				if err != nil {
					return err
				}
				res, err := app.check(ctx, req)
				if err != nil {
					return err
				}
				if p.JSON {
					if err := printJSON(cmd.OutOrStdout(), res); err != nil {
						return err
					}
				} else {
					printCheck(cmd.OutOrStdout(), *res)
				}
				return violationsErr(len(res.Violations))
			})
		},
	}
	cmd.Flags().StringVar(&p.Kind, "kind", "", "Schema kind")
	cmd.Flags().StringVar(&p.Field, "field", "", "Attribute or relationship name, empty for node properties")
	cmd.Flags().StringVar(&p.Property, "property", "", "Changed property, e.g. regex")
	cmd.Flags().StringVar(&p.Constraint, "constraint", "", "Constraint name, derived from the path by default")
	cmd.Flags().StringVar(&p.NewSchema, "new-schema", "", "File with the new schema, current schema is checked if empty")
	addBranchFlags(cmd, &p.Branch, &p.At)
	cmd.Flags().BoolVar(&p.JSON, "json", false, "Print JSON")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("property")
	return cmd
}

func (p *checkParams) request(app *wiredApp) (checkRequest, error) {
	at, err := parseAt(p.At)
	if err != nil {
		return checkRequest{}, err
	}
	req := checkRequest{
		Branch:     p.Branch,
		At:         at,
		Field:      p.Field,
		Property:   p.Property,
		Constraint: p.Constraint,
	}
	if p.NewSchema == "" {
		req.Schema, err = app.Schemas.Get(p.Kind, p.Branch)
		return req, err
	}
	schemas, err := schema.LoadFiles(p.NewSchema)
	if err != nil {
		return req, err
	}
	for _, s := range schemas {
		if s.Kind == p.Kind {
			req.Schema = s
			return req, nil
		}
	}
	return req, fmt.Errorf("«%s»: %w: «%s»", p.NewSchema, schema.ErrSchemaNotFound, p.Kind)
}

func addBranchFlags(cmd *cobra.Command, branch, at *string) {
	cmd.Flags().StringVar(branch, "branch", "", "Branch to check, default branch if empty")
	cmd.Flags().StringVar(at, "at", "", "RFC3339 time to observe data at, now if empty")
}

func parseAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at «%s»: %w", s, err)
	}
	return at, nil
}

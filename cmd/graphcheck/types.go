/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voedger/graphcheck/pkg/config"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/graph/fixture"
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
)

// graphStore is the storage every driver provides
type graphStore interface {
	graph.IStore
	graph.IDatabase
}

type fixtureResults []*fixture.Result

// Flags shared by all commands
type cliParams struct {
	ConfigPath string
	Overrides  config.Config
}

type wiredApp struct {
	Config      *config.Config
	Store       graphStore
	Schemas     *schema.Registry
	Fixtures    fixtureResults
	Nodes       nodes.IManager
	Constraints validators.IConstraintRegistry
	Prometheus  *prometheus.Registry
	Checker     *validators.AggregatedConstraintChecker
	Runner      *validators.Runner
	Determiner  *validators.Determiner
	Regexes     *attribute.RegexCache
}

type checkRequest struct {
	Branch     string             `json:"branch,omitempty"`
	At         time.Time          `json:"at,omitempty"`
	Schema     *schema.NodeSchema `json:"schema"`
	Field      string             `json:"field,omitempty"`
	Property   string             `json:"property"`
	Constraint string             `json:"constraint,omitempty"`
}

type checkResponse struct {
	ConstraintName string                        `json:"constraint_name"`
	SchemaPath     string                        `json:"schema_path"`
	Violations     []*validators.SchemaViolation `json:"violations"`
}

type migrateRequest struct {
	Branch  string               `json:"branch,omitempty"`
	At      time.Time            `json:"at,omitempty"`
	Schemas []*schema.NodeSchema `json:"schemas"`
}

type migrateResponse struct {
	Results    []checkResponse `json:"results"`
	Violations int             `json:"violations"`
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Constraint checker checks existing data against one kind of schema constraint change
type IConstraintChecker interface {
	// Stable identifier, e.g. `attribute.regex.update`
	Name() string

	// Returns true if checker handles the request constraint name
	Supports(req *SchemaConstraintValidatorRequest) bool

	// Returns one GroupedDataPaths per executed query
	Check(ctx context.Context, req *SchemaConstraintValidatorRequest) ([]*GroupedDataPaths, error)
}

// Constraint query is executed by graph session and translates result rows into data paths
type IConstraintQuery interface {
	graph.IQuery
	DataPaths(rows []graph.Row) (*GroupedDataPaths, error)
}

// Immutable registry of constraint checkers
type IConstraintRegistry interface {
	// Distinct checkers in registration order
	Checkers() []IConstraintChecker

	// Returns checker registered for the constraint name
	Get(constraintName string) (IConstraintChecker, bool)

	// Registered constraint names, sorted
	Names() []string
}

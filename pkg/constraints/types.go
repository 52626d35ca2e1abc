/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import (
	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

type ParamsType struct {
	RegexCacheSize        int
	UniquenessConcurrency int
}

// Dependencies of checkers
type Deps struct {
	DB        graph.IDatabase
	Schemas   schema.ISchemaRegistry
	AttrTypes attrtypes.IAttributeTypes
	Params    ParamsType
}

type registry struct {
	checkers []validators.IConstraintChecker
	byName   map[string]validators.IConstraintChecker
	names    []string
}

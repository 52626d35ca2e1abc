/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import (
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
	"github.com/voedger/graphcheck/pkg/validators/node"
	"github.com/voedger/graphcheck/pkg/validators/relationship"
	"github.com/voedger/graphcheck/pkg/validators/uniqueness"
)

// Provides immutable registry of all constraint checkers. Checkers are shared by names they support
func Provide(deps Deps) (validators.IConstraintRegistry, error) {
	checkers := []validators.IConstraintChecker{}
	checkers = append(checkers, attribute.ProvideCheckers(deps.DB, deps.AttrTypes, deps.Params.RegexCacheSize)...)
	checkers = append(checkers, relationship.ProvideCheckers(deps.DB, deps.Schemas)...)
	checkers = append(checkers, node.ProvideCheckers(deps.DB, deps.Schemas)...)
	checkers = append(checkers, uniqueness.ProvideChecker(deps.DB, deps.Params.UniquenessConcurrency))
	return newRegistry(checkers)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Returns checkers of attribute constraints. Checkers share the compiled regex cache
func ProvideCheckers(db graph.IDatabase, types attrtypes.IAttributeTypes, regexCacheSize int) []validators.IConstraintChecker {
	return []validators.IConstraintChecker{
		newRegexChecker(db, NewRegexCache(regexCacheSize)),
		newEnumChecker(db),
		newKindChecker(db, types),
		newLengthChecker(db),
		&uniqueChecker{db: db},
		newOptionalChecker(db),
		newChoicesChecker(db),
	}
}

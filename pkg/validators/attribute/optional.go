/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Reports nodes without value once attribute becomes mandatory
func newOptionalChecker(db graph.IDatabase) validators.IConstraintChecker {
	return &checker{
		name:      validators.AttributeOptionalUpdate,
		supported: []string{validators.AttributeOptionalUpdate},
		db:        db,
		skip: func(attr *schema.AttributeSchema) bool {
			return attr.Optional
		},
		build: func(_ *validators.SchemaConstraintValidatorRequest, _ *schema.AttributeSchema) (predicate, error) {
			return func(av graph.AttributeState) (bool, error) {
				return !hasValue(av), nil
			}, nil
		},
	}
}

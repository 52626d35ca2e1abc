/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"fmt"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func newEnumChecker(db graph.IDatabase) validators.IConstraintChecker {
	return &checker{
		name:      validators.AttributeEnumUpdate,
		supported: []string{validators.AttributeEnumUpdate},
		db:        db,
		skip: func(attr *schema.AttributeSchema) bool {
			return len(attr.Enum) == 0
		},
		build: func(_ *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error) {
			allowed := make(map[string]struct{}, len(attr.Enum))
			for _, e := range attr.Enum {
				allowed[fmt.Sprint(e)] = struct{}{}
			}
			return notIn(allowed), nil
		},
	}
}

func newChoicesChecker(db graph.IDatabase) validators.IConstraintChecker {
	return &checker{
		name:      validators.AttributeChoicesUpdate,
		supported: []string{validators.AttributeChoicesUpdate},
		db:        db,
		skip: func(attr *schema.AttributeSchema) bool {
			return len(attr.Choices) == 0
		},
		build: func(_ *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error) {
			allowed := make(map[string]struct{}, len(attr.Choices))
			for _, c := range attr.ChoiceNames() {
				allowed[c] = struct{}{}
			}
			return notIn(allowed), nil
		},
	}
}

// Null values are never reported
func notIn(allowed map[string]struct{}) predicate {
	return func(av graph.AttributeState) (bool, error) {
		if !hasValue(av) {
			return false, nil
		}
		s := fmt.Sprint(av.Value)
		if s == graph.NullValue {
			return false, nil
		}
		_, ok := allowed[s]
		return !ok, nil
	}
}

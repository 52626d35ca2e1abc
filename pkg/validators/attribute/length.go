/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"fmt"
	"unicode/utf8"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Checks both bounds regardless of which one has changed
func newLengthChecker(db graph.IDatabase) validators.IConstraintChecker {
	return &checker{
		name:      lengthCheckerName,
		supported: []string{validators.AttributeMinLengthUpdate, validators.AttributeMaxLengthUpdate},
		db:        db,
		skip: func(attr *schema.AttributeSchema) bool {
			return attr.MinLength == nil && attr.MaxLength == nil
		},
		build: func(_ *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error) {
			return func(av graph.AttributeState) (bool, error) {
				if !hasValue(av) {
					return false, nil
				}
				s, ok := av.Value.(string)
				if !ok {
					s = fmt.Sprint(av.Value)
				}
				l := utf8.RuneCountInString(s)
				if attr.MinLength != nil && l < *attr.MinLength {
					return true, nil
				}
				return attr.MaxLength != nil && l > *attr.MaxLength, nil
			}, nil
		},
	}
}

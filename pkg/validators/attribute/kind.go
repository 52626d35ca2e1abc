/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"errors"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func newKindChecker(db graph.IDatabase, types attrtypes.IAttributeTypes) validators.IConstraintChecker {
	return &checker{
		name:      validators.AttributeKindUpdate,
		supported: []string{validators.AttributeKindUpdate},
		db:        db,
		build: func(_ *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error) {
			typ, err := types.Get(attr.Kind)
			if err != nil {
				return nil, err
			}
			return func(av graph.AttributeState) (bool, error) {
				if !hasValue(av) {
					return false, nil
				}
				err := typ.Validate(av.Value, attr.Name, attr)
				if err == nil {
					return false, nil
				}
				if errors.Is(err, attrtypes.ErrInvalidValue) {
					if logger.IsVerbose() {
						logger.Verbose(err)
					}
					return true, nil
				}
				return false, err
			}, nil
		},
	}
}

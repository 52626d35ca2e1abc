/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package node

import (
	"errors"

	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Returns schema currently stored for the request kind, nil if there is none
func currentSchema(schemas schema.ISchemaRegistry, req *validators.SchemaConstraintValidatorRequest) (*schema.NodeSchema, error) {
	cur, err := schemas.Get(req.NodeSchema.Kind, req.Branch.Name)
	if errors.Is(err, schema.ErrSchemaNotFound) {
		return nil, nil
	}
	return cur, err
}

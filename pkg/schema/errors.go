/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import "errors"

var (
	ErrSchemaNotFound        = errors.New("schema not found")
	ErrAttributeNotFound     = errors.New("attribute not found")
	ErrRelationshipNotFound  = errors.New("relationship not found")
	ErrUnknownSchemaPath     = errors.New("unknown schema path")
	ErrInvalidSchema         = errors.New("invalid schema")
	ErrInvalidConstraintName = errors.New("invalid constraint name")
)

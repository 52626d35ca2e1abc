/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

import "github.com/voedger/graphcheck/pkg/schema"

// Attribute type validates format of values stored for attributes of the kind
type IAttributeType interface {
	Kind() string

	// Returns ErrInvalidValue wrapped error if value has wrong format
	Validate(value any, name string, schema *schema.AttributeSchema) error
}

type IAttributeTypes interface {
	// Returns ErrUnknownKind if kind is not registered
	Get(kind string) (IAttributeType, error)
}

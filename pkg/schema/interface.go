/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

// Schema registry, read-only for constraint validation
type ISchemaRegistry interface {
	// Returns ErrSchemaNotFound if schema is not known on the branch nor on the default branch
	Get(name string, branch string) (*NodeSchema, error)

	// Returns all schemas visible on the branch, ordered by kind
	All(branch string) []*NodeSchema
}

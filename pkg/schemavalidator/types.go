/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schemavalidator

import (
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Builds query for the request
type QueryFactory func(req *validators.SchemaConstraintValidatorRequest) (validators.IConstraintQuery, error)

// SchemaValidator validates data against the current state of a single schema constraint
type SchemaValidator struct {
	NodeSchema     *schema.NodeSchema
	SchemaPath     schema.SchemaPath
	ConstraintName string

	queries []QueryFactory
	nodes   nodes.IManager

	// Returns true if constraint does not apply to the schema
	skip func() bool
}

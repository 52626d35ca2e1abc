/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schemavalidator

import (
	"context"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/validators"
)

func (v *SchemaValidator) String() string {
	return fmt.Sprintf("«%s» at «%s»", v.ConstraintName, v.SchemaPath)
}

// Runs queries on the branch at the current time and returns violations
func (v *SchemaValidator) RunValidate(ctx context.Context, db graph.IDatabase, branch *graph.Branch) ([]*validators.SchemaViolation, error) {
	if v.skip != nil && v.skip() {
		return []*validators.SchemaViolation{}, nil
	}
	req := &validators.SchemaConstraintValidatorRequest{
		NodeSchema:     v.NodeSchema,
		SchemaPath:     v.SchemaPath,
		ConstraintName: v.ConstraintName,
		Branch:         branch,
		At:             time.Now().UTC(),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	paths := []validators.DataPath{}
	for _, factory := range v.queries {
		q, err := factory(req)
		if err != nil {
			return nil, err
		}
		grouped, err := validators.RunQuery(ctx, db, q)
		if err != nil {
			return nil, fmt.Errorf("%v: query «%s»: %w", v, q.Name(), err)
		}
		paths = append(paths, grouped.All()...)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v: %d violating paths", v, len(paths)))
	}

	labels, err := validators.ResolveLabels(ctx, v.nodes, validators.NodeIDs(paths), branch, req.At, []string{v.SchemaPath.FieldName}, nil)
	if err != nil {
		return nil, err
	}
	violations := validators.BuildViolations(paths, labels)
	validators.RenderMessages(violations, v.ConstraintName, v.SchemaPath.String())
	return violations, nil
}

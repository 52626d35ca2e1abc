/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package relationship

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Reports nodes without peers once relationship becomes mandatory
type optionalChecker struct {
	db graph.IDatabase
}

func (c *optionalChecker) Name() string { return validators.RelationshipOptionalUpdate }

func (c *optionalChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return supports(req, validators.RelationshipOptionalUpdate)
}

func (c *optionalChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	rel, err := req.NodeSchema.Relationship(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	if rel.Optional {
		return []*validators.GroupedDataPaths{}, nil
	}
	return runPeersQuery(ctx, c.db, validators.RelationshipOptionalUpdate, req, rel, func(n graph.NodeState, peers []graph.PeerState) []graph.Row {
		if len(peers) == 0 {
			return []graph.Row{nodeRow(n, n.Branch, nil)}
		}
		return nil
	})
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package relationship

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Count of active peers must be within [min, max]. Max 0 means unbounded
type countChecker struct {
	db graph.IDatabase
}

func (c *countChecker) Name() string { return countCheckerName }

func (c *countChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return supports(req, validators.RelationshipCardinalityUpdate, validators.RelationshipMinCountUpdate, validators.RelationshipMaxCountUpdate)
}

// Cardinality one overrides counts
func bounds(rel *schema.RelationshipSchema) (min, max int) {
	if rel.Cardinality == schema.CardinalityOne {
		if rel.Optional {
			return 0, 1
		}
		return 1, 1
	}
	return rel.MinCount, rel.MaxCount
}

func (c *countChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	rel, err := req.NodeSchema.Relationship(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	min, max := bounds(rel)
	if min == 0 && max == 0 {
		return []*validators.GroupedDataPaths{}, nil
	}
	// violation is caused by the change on the request branch
	branch := req.Branch.Name
	return runPeersQuery(ctx, c.db, countCheckerName, req, rel, func(n graph.NodeState, peers []graph.PeerState) []graph.Row {
		cnt := len(peers)
		if cnt < min || (max > 0 && cnt > max) {
			return []graph.Row{nodeRow(n, branch, cnt)}
		}
		return nil
	})
}

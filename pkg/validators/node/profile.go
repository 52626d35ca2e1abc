/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package node

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Selects active profiles of the node kind
type profilesQuery struct {
	validators.QueryBase
}

func (q *profilesQuery) Name() string { return validators.NodeGenerateProfileUpdate }

func (q *profilesQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	nodes, err := q.Traversal(reader).ActiveNodes(ctx, q.NodeSchema.ProfileKind())
	if err != nil {
		return nil, err
	}
	rows := make([]graph.Row, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, graph.Row{
			validators.ColNodeID: string(n.Vertex.ID),
			validators.ColKind:   n.Vertex.StringProp(graph.PropKind),
			validators.ColBranch: n.Branch,
		})
	}
	return rows, nil
}

func (q *profilesQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	res := validators.NewGroupedDataPaths()
	for _, r := range rows {
		res.AddPath(q.DataPath(schema.PathTypeNode, r))
	}
	return res, nil
}

// Reports existing profiles once profile generation is disabled
type generateProfileChecker struct {
	db graph.IDatabase
}

func (c *generateProfileChecker) Name() string { return validators.NodeGenerateProfileUpdate }

func (c *generateProfileChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == validators.NodeGenerateProfileUpdate
}

func (c *generateProfileChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	if req.NodeSchema.ProfileEnabled() {
		return []*validators.GroupedDataPaths{}, nil
	}
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	res, err := validators.RunQuery(ctx, c.db, &profilesQuery{QueryBase: base})
	if err != nil {
		return nil, err
	}
	return []*validators.GroupedDataPaths{res}, nil
}

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

// Returns violation rows of the node given its active peers
type peersFunc func(n graph.NodeState, peers []graph.PeerState) []graph.Row

// Visits active peers of every active node of the schema kind over the relationship
type peersQuery struct {
	validators.QueryBase
	name string
	rel  *schema.RelationshipSchema
	rows peersFunc
}

func (q *peersQuery) Name() string { return q.name }

func (q *peersQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	t := q.Traversal(reader)
	nodes, err := t.ActiveNodes(ctx, q.NodeSchema.Kind)
	if err != nil {
		return nil, err
	}
	res := []graph.Row{}
	for _, n := range nodes {
		peers, err := t.ActivePeers(ctx, n.Vertex.ID, q.rel.Identifier, q.rel.Direction)
		if err != nil {
			return nil, err
		}
		res = append(res, q.rows(n, peers)...)
	}
	return res, nil
}

func (q *peersQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	res := validators.NewGroupedDataPaths()
	for _, r := range rows {
		res.AddPath(q.DataPath(schema.PathTypeRelationship, r))
	}
	return res, nil
}

func nodeRow(n graph.NodeState, branch string, value any) graph.Row {
	return graph.Row{
		validators.ColNodeID: string(n.Vertex.ID),
		validators.ColKind:   n.Vertex.StringProp(graph.PropKind),
		validators.ColBranch: branch,
		validators.ColValue:  value,
	}
}

// Runs peers query for the relationship of the request
func runPeersQuery(ctx context.Context, db graph.IDatabase, name string, req *validators.SchemaConstraintValidatorRequest,
	rel *schema.RelationshipSchema, rows peersFunc) ([]*validators.GroupedDataPaths, error) {
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	res, err := validators.RunQuery(ctx, db, &peersQuery{QueryBase: base, name: name, rel: rel, rows: rows})
	if err != nil {
		return nil, err
	}
	return []*validators.GroupedDataPaths{res}, nil
}

func supports(req *validators.SchemaConstraintValidatorRequest, names ...string) bool {
	for _, n := range names {
		if req.ConstraintName == n {
			return true
		}
	}
	return false
}

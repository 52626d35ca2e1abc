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

// Selects hierarchy peers which are not of the expected kind or belong to other hierarchy
type hierarchyQuery struct {
	validators.QueryBase
	field     string
	expected  string
	direction graph.Direction
}

func (q *hierarchyQuery) Name() string { return hierarchyCheckerName }

func (q *hierarchyQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	t := q.Traversal(reader)
	nodes, err := t.ActiveNodes(ctx, q.NodeSchema.Kind)
	if err != nil {
		return nil, err
	}
	rows := []graph.Row{}
	for _, n := range nodes {
		peers, err := t.ActivePeers(ctx, n.Vertex.ID, schema.HierarchyIdentifier, q.direction)
		if err != nil {
			return nil, err
		}
		for _, p := range peers {
			if p.Peer.HasLabel(q.expected) && p.Hierarchy == q.NodeSchema.Hierarchy {
				continue
			}
			rows = append(rows, graph.Row{
				validators.ColNodeID: string(n.Vertex.ID),
				validators.ColKind:   n.Vertex.StringProp(graph.PropKind),
				validators.ColBranch: p.Branch,
				validators.ColPeerID: string(p.Peer.ID),
				validators.ColValue:  p.Peer.StringProp(graph.PropKind),
			})
		}
	}
	return rows, nil
}

func (q *hierarchyQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	res := validators.NewGroupedDataPaths()
	for _, r := range rows {
		p := q.DataPath(schema.PathTypeNode, r)
		p.FieldName = q.field
		res.AddPath(p)
	}
	return res, nil
}

type hierarchyChecker struct {
	db      graph.IDatabase
	schemas schema.ISchemaRegistry
}

func (c *hierarchyChecker) Name() string { return hierarchyCheckerName }

func (c *hierarchyChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == validators.NodeParentUpdate || req.ConstraintName == validators.NodeChildrenUpdate
}

func (c *hierarchyChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	cur, err := currentSchema(c.schemas, req)
	if err != nil {
		return nil, err
	}
	var field, expected, was string
	var dir graph.Direction
	if req.ConstraintName == validators.NodeParentUpdate {
		field, expected, dir = schema.RelationshipNameParent, req.NodeSchema.Parent, graph.DirectionOutbound
		if cur != nil {
			was = cur.Parent
		}
	} else {
		field, expected, dir = schema.RelationshipNameChildren, req.NodeSchema.Children, graph.DirectionInbound
		if cur != nil {
			was = cur.Children
		}
	}
	if expected == "" || expected == was {
		return []*validators.GroupedDataPaths{}, nil
	}
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	res, err := validators.RunQuery(ctx, c.db, &hierarchyQuery{QueryBase: base, field: field, expected: expected, direction: dir})
	if err != nil {
		return nil, err
	}
	return []*validators.GroupedDataPaths{res}, nil
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"
	"fmt"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

// QueryBase is embedded by constraint queries: request scope plus branch-filtered traversal
type QueryBase struct {
	NodeSchema *schema.NodeSchema
	SchemaPath schema.SchemaPath
	Branch     *graph.Branch
	filter     graph.FilterPath
}

// Builds query base for the request. Returns error if branch filter can not be built
func NewQueryBase(req *SchemaConstraintValidatorRequest) (QueryBase, error) {
	fp, err := req.Branch.QueryFilterPath(req.Time(), true)
	if err != nil {
		return QueryBase{}, err
	}
	if len(fp.Params) == 0 {
		return QueryBase{}, fmt.Errorf("%v: %w: no params", req.Branch, graph.ErrInvalidBranchFilter)
	}
	return QueryBase{
		NodeSchema: req.NodeSchema,
		SchemaPath: req.SchemaPath,
		Branch:     req.Branch,
		filter:     fp,
	}, nil
}

func (q QueryBase) Filter() graph.FilterPath { return q.filter }

// Returns branch-filtered traversal over the reader
func (q QueryBase) Traversal(reader graph.IGraphReader) *graph.Traversal {
	return graph.NewTraversal(reader, q.filter)
}

// Returns data path of the query node, field and property
func (q QueryBase) DataPath(pathType schema.PathType, row graph.Row) DataPath {
	return DataPath{
		Branch:       row.String(ColBranch),
		PathType:     pathType,
		ResourceType: ResourceTypeData,
		NodeID:       graph.VertexID(row.String(ColNodeID)),
		Kind:         q.kind(row),
		FieldName:    q.SchemaPath.FieldName,
		PropertyName: q.SchemaPath.PropertyName,
		PeerID:       graph.VertexID(row.String(ColPeerID)),
		Value:        row.Get(ColValue),
	}
}

func (q QueryBase) kind(row graph.Row) string {
	if k := row.String(ColKind); k != "" {
		return k
	}
	return q.NodeSchema.Kind
}

// Visits attribute value of every active node of the schema kind
func (q QueryBase) ForEachAttributeValue(ctx context.Context, reader graph.IGraphReader, field string,
	cb func(node graph.NodeState, av graph.AttributeState) error) error {
	t := q.Traversal(reader)
	nodes, err := t.ActiveNodes(ctx, q.NodeSchema.Kind)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		av, err := t.AttributeValue(ctx, n.Vertex.ID, field)
		if err != nil {
			return err
		}
		if err := cb(n, av); err != nil {
			return err
		}
	}
	return nil
}

// Runs query in new read session
func RunQuery(ctx context.Context, db graph.IDatabase, q IConstraintQuery) (*GroupedDataPaths, error) {
	session, err := db.ReadSession(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close(ctx)
	rows, err := session.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	return q.DataPaths(rows)
}

// Row of attribute value of the node
func AttributeRow(n graph.NodeState, av graph.AttributeState) graph.Row {
	branch := av.Branch
	if branch == "" {
		branch = n.Branch
	}
	return graph.Row{
		ColNodeID: string(n.Vertex.ID),
		ColKind:   n.Vertex.StringProp(graph.PropKind),
		ColBranch: branch,
		ColValue:  av.Value,
	}
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

import (
	"context"
	"fmt"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Returns (node, path, value, deepest branch) tuples whose value is shared by two or more nodes of the kind
type uniquenessQuery struct {
	validators.QueryBase
	request QueryRequest
}

func (q *uniquenessQuery) Name() string { return validators.NodeUniquenessConstraintsUpdate }

type pathValue struct {
	row   graph.Row
	key   string
	owner graph.VertexID
}

func (q *uniquenessQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	t := q.Traversal(reader)
	nodes, err := t.ActiveNodes(ctx, q.request.Kind)
	if err != nil {
		return nil, err
	}
	values := []pathValue{}
	owners := map[string]map[graph.VertexID]bool{}
	for _, n := range nodes {
		nv, err := q.nodeValues(ctx, t, n)
		if err != nil {
			return nil, err
		}
		for _, v := range nv {
			if owners[v.key] == nil {
				owners[v.key] = map[graph.VertexID]bool{}
			}
			owners[v.key][v.owner] = true
		}
		values = append(values, nv...)
	}
	rows := []graph.Row{}
	for _, v := range values {
		if len(owners[v.key]) > 1 {
			rows = append(rows, v.row)
		}
	}
	return rows, nil
}

// Branch of the deeper of peer attribute and relationship, the attribute wins a tie
func deeper(av graph.AttributeState, peer graph.PeerState) string {
	if peer.BranchLevel > av.BranchLevel {
		return peer.Branch
	}
	return av.Branch
}

func (q *uniquenessQuery) nodeValues(ctx context.Context, t *graph.Traversal, n graph.NodeState) ([]pathValue, error) {
	res := []pathValue{}
	add := func(path string, value any, branch string, peer graph.VertexID) {
		row := graph.Row{
			validators.ColNodeID: string(n.Vertex.ID),
			validators.ColKind:   n.Vertex.StringProp(graph.PropKind),
			validators.ColBranch: branch,
			validators.ColValue:  value,
			colPath:              path,
		}
		if peer != "" {
			row[validators.ColPeerID] = string(peer)
		}
		res = append(res, pathValue{row: row, key: path + "=" + validators.TypedValueKey(value), owner: n.Vertex.ID})
	}
	for _, p := range q.request.Paths() {
		if !p.IsRelationship() {
			av, err := t.AttributeValue(ctx, n.Vertex.ID, p.Attribute.Name)
			if err != nil {
				return nil, err
			}
			if av.Found && av.Value != nil {
				add(p.String(), av.Value, av.Branch, "")
			}
			continue
		}
		peers, err := t.ActivePeers(ctx, n.Vertex.ID, p.Relationship.Identifier, p.Relationship.Direction)
		if err != nil {
			return nil, err
		}
		for _, peer := range peers {
			if p.PeerAttribute == "" {
				add(p.String(), string(peer.Peer.ID), peer.Branch, peer.Peer.ID)
				continue
			}
			av, err := t.AttributeValue(ctx, peer.Peer.ID, p.PeerAttribute)
			if err != nil {
				return nil, err
			}
			if av.Found && av.Value != nil {
				add(p.String(), av.Value, deeper(av, peer), peer.Peer.ID)
			}
		}
	}
	return res, nil
}

// Groups rows by node and applies constraint groups
func (q *uniquenessQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	paths := map[string]NonUniqueAttribute{}
	for _, p := range q.request.Paths() {
		paths[p.String()] = NonUniqueAttribute{Path: p}
	}
	idx := newIndex()
	for _, r := range rows {
		path, ok := paths[r.String(colPath)]
		if !ok {
			return nil, fmt.Errorf("%w: unexpected path «%s»", validators.ErrCheckerFailed, r.String(colPath))
		}
		n := idx.node(graph.VertexID(r.String(validators.ColNodeID)), r.String(validators.ColKind))
		path.Value = r.Get(validators.ColValue)
		path.Branch = r.String(validators.ColBranch)
		if path.Path.IsRelationship() {
			n.Related = append(n.Related, NonUniqueRelatedAttribute{NonUniqueAttribute: path, PeerID: graph.VertexID(r.String(validators.ColPeerID))})
		} else {
			n.Attributes = append(n.Attributes, path)
		}
	}
	return idx.violations(q.request.Groups), nil
}

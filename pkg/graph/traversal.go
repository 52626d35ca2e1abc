/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"context"
	"errors"
	"fmt"
)

// Traversal reads the current state of nodes, attributes and relationships
// as seen through the branch filter
type Traversal struct {
	reader IGraphReader
	filter FilterPath
}

func NewTraversal(reader IGraphReader, filter FilterPath) *Traversal {
	return &Traversal{reader: reader, filter: filter}
}

func (t *Traversal) Reader() IGraphReader { return t.reader }

func (t *Traversal) Filter() FilterPath { return t.filter }

// Current node state
type NodeState struct {
	Vertex *Vertex
	Branch string
	Active bool
}

// Current attribute state
type AttributeState struct {
	Found     bool
	Value       any
	Branch      string
	BranchLevel int
	Attribute   VertexID
}

// Current relationship state between the node and a peer
type PeerState struct {
	Relationship VertexID
	Peer         *Vertex
	Branch       string
	BranchLevel  int
	Active       bool
	Hierarchy    string
}

func (t *Traversal) out(ctx context.Context, id VertexID, typ EdgeType) ([]*Edge, error) {
	edges, err := t.reader.OutEdges(ctx, id, typ)
	if err != nil {
		return nil, err
	}
	return t.filter.Apply(edges), nil
}

func (t *Traversal) in(ctx context.Context, id VertexID, typ EdgeType) ([]*Edge, error) {
	edges, err := t.reader.InEdges(ctx, id, typ)
	if err != nil {
		return nil, err
	}
	return t.filter.Apply(edges), nil
}

// Returns the current membership state of the node
func (t *Traversal) Node(ctx context.Context, v *Vertex) (NodeState, error) {
	edges, err := t.out(ctx, v.ID, EdgeIsPartOf)
	if err != nil {
		return NodeState{}, err
	}
	cands := make([]Candidate, 0, len(edges))
	for _, e := range edges {
		cands = append(cands, Candidate{Key: string(v.ID), Edges: []*Edge{e}})
	}
	sel := SelectCurrent(cands)
	if len(sel) == 0 {
		return NodeState{Vertex: v}, nil
	}
	return NodeState{Vertex: v, Branch: sel[0].DeepestBranch(), Active: sel[0].Active()}, nil
}

// Returns active nodes with specified kind label in creation order
func (t *Traversal) ActiveNodes(ctx context.Context, kind string) ([]NodeState, error) {
	vv, err := t.reader.VerticesByLabel(ctx, kind)
	if err != nil {
		return nil, err
	}
	res := make([]NodeState, 0, len(vv))
	for _, v := range vv {
		if !v.HasLabel(LabelNode) {
			continue
		}
		st, err := t.Node(ctx, v)
		if err != nil {
			return nil, err
		}
		if st.Active {
			res = append(res, st)
		}
	}
	return res, nil
}

// Returns the current value of the named attribute of the node.
//
// Found is false if attribute has never been set or the current version is deleted
func (t *Traversal) AttributeValue(ctx context.Context, node VertexID, name string) (AttributeState, error) {
	r1s, err := t.out(ctx, node, EdgeHasAttribute)
	if err != nil {
		return AttributeState{}, err
	}
	key := fmt.Sprintf("%s/%s", node, name)
	cands := []Candidate{}
	for _, r1 := range r1s {
		attr, err := t.reader.Vertex(ctx, r1.To)
		if err != nil {
			return AttributeState{}, err
		}
		if attr.StringProp(PropName) != name {
			continue
		}
		r2s, err := t.out(ctx, attr.ID, EdgeHasValue)
		if err != nil {
			return AttributeState{}, err
		}
		for _, r2 := range r2s {
			cands = append(cands, Candidate{Key: key, Edges: []*Edge{r1, r2}})
		}
	}
	sel := SelectCurrent(cands)
	if len(sel) == 0 || !sel[0].Active() {
		return AttributeState{}, nil
	}
	cur := sel[0]
	av, err := t.reader.Vertex(ctx, cur.Edges[1].To)
	if err != nil {
		return AttributeState{}, err
	}
	st := AttributeState{
		Found:       true,
		Value:       av.Prop(PropValue),
		Branch:      cur.DeepestBranch(),
		BranchLevel: cur.DeepestBranchLevel(),
		Attribute:   cur.Edges[0].To,
	}
	if s, ok := st.Value.(string); ok && s == NullValue {
		st.Value = nil
	}
	return st, nil
}

// Returns the current state of all relationships of the node with specified identifier.
//
// Direction is the direction of the relationship as seen from the node
func (t *Traversal) RelationshipPeers(ctx context.Context, node VertexID, identifier string, dir Direction) ([]PeerState, error) {
	var r1s []*Edge
	var err error
	switch dir {
	case DirectionBidirectional, DirectionOutbound:
		r1s, err = t.out(ctx, node, EdgeIsRelated)
	case DirectionInbound:
		r1s, err = t.in(ctx, node, EdgeIsRelated)
	default:
		return nil, fmt.Errorf("%w: «%s»", ErrInvalidDirection, dir)
	}
	if err != nil {
		return nil, err
	}

	cands := []Candidate{}
	for _, r1 := range r1s {
		relID := r1.Other(node)
		rel, err := t.reader.Vertex(ctx, relID)
		if err != nil {
			return nil, err
		}
		if !rel.HasLabel(LabelRelationship) || rel.StringProp(PropName) != identifier {
			continue
		}
		var r2s []*Edge
		if dir == DirectionOutbound {
			r2s, err = t.out(ctx, relID, EdgeIsRelated)
		} else {
			r2s, err = t.in(ctx, relID, EdgeIsRelated)
		}
		if err != nil {
			return nil, err
		}
		for _, r2 := range r2s {
			peer := r2.Other(relID)
			if peer == node {
				continue
			}
			cands = append(cands, Candidate{Key: fmt.Sprintf("%s/%s", relID, peer), Edges: []*Edge{r1, r2}})
		}
	}

	sel := SelectCurrent(cands)
	res := make([]PeerState, 0, len(sel))
	for _, c := range sel {
		r1, r2 := c.Edges[0], c.Edges[1]
		peer, err := t.reader.Vertex(ctx, r2.Other(r1.Other(node)))
		if err != nil {
			if errors.Is(err, ErrVertexNotFound) {
				continue
			}
			return nil, err
		}
		hierarchy := r1.Hierarchy
		if hierarchy == "" {
			hierarchy = r2.Hierarchy
		}
		res = append(res, PeerState{
			Relationship: r1.Other(node),
			Peer:         peer,
			Branch:       c.DeepestBranch(),
			BranchLevel:  c.DeepestBranchLevel(),
			Active:       c.Active(),
			Hierarchy:    hierarchy,
		})
	}
	return res, nil
}

// Same as RelationshipPeers but returns active relationships only
func (t *Traversal) ActivePeers(ctx context.Context, node VertexID, identifier string, dir Direction) ([]PeerState, error) {
	all, err := t.RelationshipPeers(ctx, node, identifier, dir)
	if err != nil {
		return nil, err
	}
	res := all[:0]
	for _, p := range all {
		if p.Active {
			res = append(res, p)
		}
	}
	return res, nil
}

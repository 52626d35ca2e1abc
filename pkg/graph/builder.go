/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RootID is the vertex every node IS_PART_OF
const RootID VertexID = "root"

// Node to be created by Builder
type NodeSpec struct {
	ID         VertexID
	Kind       string
	Labels     []string
	Branch     string
	At         time.Time
	Attributes map[string]any
}

// Relationship to be created by Builder
type RelationshipSpec struct {
	Node       VertexID
	Peer       VertexID
	Identifier string
	Direction  Direction
	Hierarchy  string
	Branch     string
	At         time.Time
}

// Builder writes versioned graph changes: every change is a new edge, previous
// versions on the same branch are closed
type Builder struct {
	store IStore
	newID func() string
}

func NewBuilder(store IStore) *Builder {
	return &Builder{store: store, newID: uuid.NewString}
}

func (b *Builder) branchLevel(ctx context.Context, name string) (int, error) {
	if name == GlobalBranch {
		return DefaultBranchLevel, nil
	}
	br, err := b.store.Branch(ctx, name)
	if err != nil {
		return 0, err
	}
	return br.Level, nil
}

func (b *Builder) ensureRoot(ctx context.Context) error {
	_, err := b.store.Vertex(ctx, RootID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrVertexNotFound) {
		return err
	}
	return b.store.PutVertex(ctx, &Vertex{ID: RootID, Labels: []string{LabelRoot}})
}

func (b *Builder) newEdge(ctx context.Context, typ EdgeType, from, to VertexID, branch string, at time.Time, status EdgeStatus) (*Edge, error) {
	level, err := b.branchLevel(ctx, branch)
	if err != nil {
		return nil, err
	}
	e := &Edge{
		ID:          b.newID(),
		Type:        typ,
		From:        from,
		To:          to,
		Branch:      branch,
		BranchLevel: level,
		FromTime:    at,
		Status:      status,
	}
	return e, nil
}

// Creates node vertex with kind label plus extra labels, links it to the root and sets the attributes
func (b *Builder) CreateNode(ctx context.Context, spec NodeSpec) (VertexID, error) {
	if err := b.ensureRoot(ctx); err != nil {
		return "", err
	}
	id := spec.ID
	if id == "" {
		id = VertexID(b.newID())
	}
	labels := []string{LabelNode, spec.Kind}
	for _, l := range spec.Labels {
		if !slices.Contains(labels, l) {
			labels = append(labels, l)
		}
	}
	v := &Vertex{ID: id, Labels: labels, Props: map[string]any{PropKind: spec.Kind}}
	if err := b.store.PutVertex(ctx, v); err != nil {
		return "", err
	}
	e, err := b.newEdge(ctx, EdgeIsPartOf, id, RootID, spec.Branch, spec.At, StatusActive)
	if err != nil {
		return "", err
	}
	if err := b.store.PutEdge(ctx, e); err != nil {
		return "", err
	}

	names := maps.Keys(spec.Attributes)
	slices.Sort(names)
	for _, name := range names {
		if err := b.SetAttribute(ctx, id, name, spec.Attributes[name], spec.Branch, spec.At); err != nil {
			return "", err
		}
	}
	return id, nil
}

// Closes open versions of the edges on the branch and adds deleted version
func (b *Builder) deleteEdges(ctx context.Context, edges []*Edge, branch string, at time.Time) error {
	done := map[string]bool{}
	for _, e := range edges {
		if !e.IsActive() || e.ToTime != nil {
			continue
		}
		if e.Branch == branch {
			closed := *e
			closed.ToTime = &at
			if err := b.store.PutEdge(ctx, &closed); err != nil {
				return err
			}
		}
		endpoints := fmt.Sprintf("%s>%s", e.From, e.To)
		if done[endpoints] {
			continue
		}
		done[endpoints] = true
		d, err := b.newEdge(ctx, e.Type, e.From, e.To, branch, at, StatusDeleted)
		if err != nil {
			return err
		}
		d.Hierarchy = e.Hierarchy
		if err := b.store.PutEdge(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// Marks node deleted on the branch starting from the time
func (b *Builder) DeleteNode(ctx context.Context, node VertexID, branch string, at time.Time) error {
	edges, err := b.store.OutEdges(ctx, node, EdgeIsPartOf)
	if err != nil {
		return err
	}
	return b.deleteEdges(ctx, edges, branch, at)
}

// Sets attribute value on the branch starting from the time. Nil value is stored as NullValue
func (b *Builder) SetAttribute(ctx context.Context, node VertexID, name string, value any, branch string, at time.Time) error {
	r1s, err := b.store.OutEdges(ctx, node, EdgeHasAttribute)
	if err != nil {
		return err
	}
	var attr VertexID
	for _, r1 := range r1s {
		v, err := b.store.Vertex(ctx, r1.To)
		if err != nil {
			return err
		}
		if v.StringProp(PropName) == name {
			attr = v.ID
			break
		}
	}
	if attr == "" {
		attr = VertexID(b.newID())
		if err := b.store.PutVertex(ctx, &Vertex{ID: attr, Labels: []string{LabelAttribute}, Props: map[string]any{PropName: name}}); err != nil {
			return err
		}
		e, err := b.newEdge(ctx, EdgeHasAttribute, node, attr, branch, at, StatusActive)
		if err != nil {
			return err
		}
		if err := b.store.PutEdge(ctx, e); err != nil {
			return err
		}
	} else {
		r2s, err := b.store.OutEdges(ctx, attr, EdgeHasValue)
		if err != nil {
			return err
		}
		for _, r2 := range r2s {
			if r2.Branch == branch && r2.IsActive() && r2.ToTime == nil {
				closed := *r2
				closed.ToTime = &at
				if err := b.store.PutEdge(ctx, &closed); err != nil {
					return err
				}
			}
		}
	}

	if value == nil {
		value = NullValue
	}
	av := VertexID(b.newID())
	if err := b.store.PutVertex(ctx, &Vertex{ID: av, Labels: []string{LabelAttributeValue}, Props: map[string]any{PropValue: value}}); err != nil {
		return err
	}
	e, err := b.newEdge(ctx, EdgeHasValue, attr, av, branch, at, StatusActive)
	if err != nil {
		return err
	}
	return b.store.PutEdge(ctx, e)
}

// Adds relationship between node and peer, returns relationship vertex ID.
//
// Edge directions are given by spec.Direction as seen from spec.Node
func (b *Builder) AddRelationship(ctx context.Context, spec RelationshipSpec) (VertexID, error) {
	rel := VertexID(b.newID())
	if err := b.store.PutVertex(ctx, &Vertex{ID: rel, Labels: []string{LabelRelationship}, Props: map[string]any{PropName: spec.Identifier}}); err != nil {
		return "", err
	}
	var r1, r2 *Edge
	var err error
	switch spec.Direction {
	case DirectionBidirectional, "":
		if r1, err = b.newEdge(ctx, EdgeIsRelated, spec.Node, rel, spec.Branch, spec.At, StatusActive); err == nil {
			r2, err = b.newEdge(ctx, EdgeIsRelated, spec.Peer, rel, spec.Branch, spec.At, StatusActive)
		}
	case DirectionOutbound:
		if r1, err = b.newEdge(ctx, EdgeIsRelated, spec.Node, rel, spec.Branch, spec.At, StatusActive); err == nil {
			r2, err = b.newEdge(ctx, EdgeIsRelated, rel, spec.Peer, spec.Branch, spec.At, StatusActive)
		}
	case DirectionInbound:
		if r1, err = b.newEdge(ctx, EdgeIsRelated, rel, spec.Node, spec.Branch, spec.At, StatusActive); err == nil {
			r2, err = b.newEdge(ctx, EdgeIsRelated, spec.Peer, rel, spec.Branch, spec.At, StatusActive)
		}
	default:
		return "", fmt.Errorf("%w: «%s»", ErrInvalidDirection, spec.Direction)
	}
	if err != nil {
		return "", err
	}
	r1.Hierarchy, r2.Hierarchy = spec.Hierarchy, spec.Hierarchy
	for _, e := range []*Edge{r1, r2} {
		if err := b.store.PutEdge(ctx, e); err != nil {
			return "", err
		}
	}
	return rel, nil
}

// Marks relationship deleted on the branch starting from the time
func (b *Builder) RemoveRelationship(ctx context.Context, rel VertexID, branch string, at time.Time) error {
	in, err := b.store.InEdges(ctx, rel, EdgeIsRelated)
	if err != nil {
		return err
	}
	out, err := b.store.OutEdges(ctx, rel, EdgeIsRelated)
	if err != nil {
		return err
	}
	return b.deleteEdges(ctx, append(in, out...), branch, at)
}

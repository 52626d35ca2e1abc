/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package fixture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	return f, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

type applier struct {
	f       *File
	store   graph.IStore
	builder *graph.Builder
	schemas schema.ISchemaRegistry
	res     *Result
}

func (a *applier) branch(b string) string {
	if b == "" {
		return graph.DefaultBranch
	}
	return b
}

func (a *applier) at(t time.Time) time.Time {
	if t.IsZero() {
		return a.f.At
	}
	return t
}

// Node labels are extended by generics the kind inherits from
func (a *applier) labels(n Node) []string {
	res := append([]string(nil), n.Labels...)
	if a.schemas == nil {
		return res
	}
	s, err := a.schemas.Get(n.Kind, a.branch(n.Branch))
	if err != nil {
		if !errors.Is(err, schema.ErrSchemaNotFound) {
			logger.Warning(fmt.Sprintf("fixture node «%s»: %v", n.ID, err))
		}
		return res
	}
	return append(res, s.InheritFrom...)
}

func (a *applier) apply(ctx context.Context) error {
	for _, b := range a.f.Branches {
		if b.Default || b.Name == graph.DefaultBranch {
			continue
		}
		br := graph.NewBranch(b.Name, b.BranchedFrom)
		if b.Origin != "" {
			br.Origin = b.Origin
		}
		if err := a.store.PutBranch(ctx, br); err != nil {
			return err
		}
	}
	for _, n := range a.f.Nodes {
		if n.Kind == "" {
			return fmt.Errorf("%w: node «%s»: kind is empty", ErrInvalidFixture, n.ID)
		}
		id, err := a.builder.CreateNode(ctx, graph.NodeSpec{
			ID:         n.ID,
			Kind:       n.Kind,
			Labels:     a.labels(n),
			Branch:     a.branch(n.Branch),
			At:         a.at(n.At),
			Attributes: n.Attributes,
		})
		if err != nil {
			return fmt.Errorf("node «%s»: %w", n.ID, err)
		}
		a.res.Nodes = append(a.res.Nodes, id)
	}
	for i, r := range a.f.Relationships {
		id, err := a.builder.AddRelationship(ctx, graph.RelationshipSpec{
			Node:       r.Node,
			Peer:       r.Peer,
			Identifier: r.Identifier,
			Direction:  r.Direction,
			Hierarchy:  r.Hierarchy,
			Branch:     a.branch(r.Branch),
			At:         a.at(r.At),
		})
		if err != nil {
			return fmt.Errorf("relationship #%d «%s»: %w", i, r.Identifier, err)
		}
		if r.ID != "" {
			a.res.Relationships[r.ID] = id
		}
	}
	for _, u := range a.f.Updates {
		if err := a.builder.SetAttribute(ctx, u.Node, u.Attribute, u.Value, a.branch(u.Branch), a.at(u.At)); err != nil {
			return fmt.Errorf("update «%s.%s»: %w", u.Node, u.Attribute, err)
		}
	}
	for _, r := range a.f.Removals {
		id, ok := a.res.Relationships[r.Relationship]
		if !ok {
			return fmt.Errorf("%w: «%s»", ErrUnknownRelationship, r.Relationship)
		}
		if err := a.builder.RemoveRelationship(ctx, id, a.branch(r.Branch), a.at(r.At)); err != nil {
			return err
		}
	}
	for _, d := range a.f.Deletions {
		if err := a.builder.DeleteNode(ctx, d.Node, a.branch(d.Branch), a.at(d.At)); err != nil {
			return fmt.Errorf("deletion «%s»: %w", d.Node, err)
		}
	}
	return nil
}

// Writes fixture into the store. Schemas are optional and used to label nodes with inherited generics
func Apply(ctx context.Context, store graph.IStore, f *File, schemas schema.ISchemaRegistry) (*Result, error) {
	if f.At.IsZero() {
		f.At = time.Now().UTC()
	}
	a := &applier{
		f:       f,
		store:   store,
		builder: graph.NewBuilder(store),
		schemas: schemas,
		res:     &Result{Relationships: map[string]graph.VertexID{}},
	}
	if err := a.apply(ctx); err != nil {
		return nil, err
	}
	logger.Verbose(fmt.Sprintf("fixture applied: %d nodes, %d relationships", len(f.Nodes), len(f.Relationships)))
	return a.res, nil
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erni27/imcache"
	"golang.org/x/exp/slices"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Observation time is truncated to ttl, requests within the same ttl window share labels
func (m *manager) cacheKey(branch *graph.Branch, at time.Time, id graph.VertexID, fields []string) string {
	return fmt.Sprintf("%s|%d|%s|%s", branch.Name, at.Truncate(m.ttl).UnixNano(), id, strings.Join(fields, ","))
}

func (m *manager) GetMany(ctx context.Context, ids []graph.VertexID, branch *graph.Branch, at time.Time, fields []string) (map[graph.VertexID]*Node, error) {
	res := make(map[graph.VertexID]*Node, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	fp, err := branch.QueryFilterPath(at, true)
	if err != nil {
		return nil, err
	}
	session, err := m.db.ReadSession(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close(ctx)
	t := graph.NewTraversal(session, fp)

	errs := []error{}
	for _, id := range ids {
		key := m.cacheKey(branch, at, id, fields)
		if n, ok := m.cache.Get(key); ok {
			res[id] = n
			continue
		}
		n, err := m.load(ctx, t, id, branch.Name, fields)
		if err != nil {
			if errors.Is(err, graph.ErrVertexNotFound) {
				continue
			}
			if errors.Is(err, ErrNodeValidation) {
				errs = append(errs, err)
				continue
			}
			return nil, err
		}
		if n == nil {
			continue
		}
		m.cache.Set(key, n, imcache.WithDefaultExpiration())
		res[id] = n
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return res, nil
}

func (m *manager) load(ctx context.Context, t *graph.Traversal, id graph.VertexID, branch string, fields []string) (*Node, error) {
	v, err := t.Reader().Vertex(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := t.Node(ctx, v)
	if err != nil {
		return nil, err
	}
	if !st.Active {
		return nil, nil
	}
	kind := v.StringProp(graph.PropKind)
	s, err := m.schemas.Get(kind, branch)
	if err != nil {
		return nil, fmt.Errorf("%w: node «%s»: %w", ErrNodeValidation, id, err)
	}

	n := &Node{ID: id, Kind: kind, Schema: s, Values: map[string]any{}}
	names := s.DisplayLabelAttributes()
	for _, f := range fields {
		if !slices.Contains(names, f) {
			names = append(names, f)
		}
	}
	for _, name := range names {
		a, err := s.Attribute(name)
		if err != nil {
			// relationships and unknown fields are not hydrated
			continue
		}
		av, err := t.AttributeValue(ctx, id, name)
		if err != nil {
			return nil, err
		}
		if (!av.Found || av.Value == nil) && !a.Optional {
			return nil, fmt.Errorf("%w: node «%s» %v: mandatory attribute «%s» has no value", ErrNodeValidation, id, s, name)
		}
		n.Values[name] = av.Value
	}
	return n, nil
}

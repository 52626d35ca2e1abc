/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package mem

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/voedger/graphcheck/pkg/graph"
)

type store struct {
	mu       sync.RWMutex
	vertices map[graph.VertexID]*graph.Vertex
	byLabel  map[string][]graph.VertexID
	edges    map[string]*graph.Edge
	out      map[graph.VertexID][]string
	in       map[graph.VertexID][]string
	branches map[string]*graph.Branch
}

func (s *store) Vertex(_ context.Context, id graph.VertexID) (*graph.Vertex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: «%s»", graph.ErrVertexNotFound, id)
	}
	return v, nil
}

func (s *store) VerticesByLabel(_ context.Context, label string) ([]*graph.Vertex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byLabel[label]
	res := make([]*graph.Vertex, 0, len(ids))
	for _, id := range ids {
		res = append(res, s.vertices[id])
	}
	return res, nil
}

func (s *store) edgesOf(ids []string, typ graph.EdgeType) []*graph.Edge {
	res := make([]*graph.Edge, 0, len(ids))
	for _, id := range ids {
		if e := s.edges[id]; e.Type == typ {
			res = append(res, e)
		}
	}
	return res
}

func (s *store) OutEdges(_ context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgesOf(s.out[id], typ), nil
}

func (s *store) InEdges(_ context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgesOf(s.in[id], typ), nil
}

func (s *store) PutVertex(_ context.Context, v *graph.Vertex) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vertices[v.ID]; !exists {
		for _, l := range v.Labels {
			s.byLabel[l] = append(s.byLabel[l], v.ID)
		}
	}
	s.vertices[v.ID] = v
	return nil
}

func (s *store) PutEdge(_ context.Context, e *graph.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.edges[e.ID]; !exists {
		s.out[e.From] = append(s.out[e.From], e.ID)
		s.in[e.To] = append(s.in[e.To], e.ID)
	}
	s.edges[e.ID] = e
	return nil
}

func (s *store) PutBranch(_ context.Context, b *graph.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches[b.Name] = b
	return nil
}

func (s *store) Branch(_ context.Context, name string) (*graph.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.branches[name]
	if !ok {
		return nil, fmt.Errorf("%w: «%s»", graph.ErrBranchNotFound, name)
	}
	return b, nil
}

func (s *store) ReadSession(ctx context.Context) (graph.ISession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{store: s}, nil
}

type session struct {
	*store
	closed atomic.Bool
}

func (s *session) Execute(ctx context.Context, q graph.IQuery) ([]graph.Row, error) {
	if s.closed.Load() {
		return nil, graph.ErrSessionClosed
	}
	return graph.ExecuteQuery(ctx, s, q)
}

func (s *session) Close(context.Context) error {
	s.closed.Store(true)
	return nil
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package neo4jstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/voedger/graphcheck/pkg/graph"
)

func (s *store) newSession(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: s.database})
}

// Runs query and collects all records
func collect(ctx context.Context, s neo4j.SessionWithContext, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := s.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	records := []*neo4j.Record{}
	for result.Next(ctx) {
		records = append(records, result.Record())
	}
	return records, result.Err()
}

func vertex(ctx context.Context, s neo4j.SessionWithContext, id graph.VertexID) (*graph.Vertex, error) {
	records, err := collect(ctx, s, qVertex, map[string]any{"id": string(id)})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: «%s»", graph.ErrVertexNotFound, id)
	}
	n, ok := records[0].Values[0].(neo4j.Node)
	if !ok {
		// notest
		return nil, fmt.Errorf("vertex «%s»: unexpected value %T", id, records[0].Values[0])
	}
	return vertexFromNode(n)
}

func verticesByLabel(ctx context.Context, s neo4j.SessionWithContext, label string) ([]*graph.Vertex, error) {
	records, err := collect(ctx, s, fmt.Sprintf(qVerticesByLabel, quote(label)), nil)
	if err != nil {
		return nil, err
	}
	res := make([]*graph.Vertex, 0, len(records))
	for _, r := range records {
		n, ok := r.Values[0].(neo4j.Node)
		if !ok {
			// notest
			return nil, fmt.Errorf("label «%s»: unexpected value %T", label, r.Values[0])
		}
		v, err := vertexFromNode(n)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func edges(ctx context.Context, s neo4j.SessionWithContext, cypher string, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	records, err := collect(ctx, s, fmt.Sprintf(cypher, quote(string(typ))), map[string]any{"id": string(id)})
	if err != nil {
		return nil, err
	}
	res := make([]*graph.Edge, 0, len(records))
	for _, r := range records {
		rel, ok := r.Values[0].(neo4j.Relationship)
		if !ok {
			// notest
			return nil, fmt.Errorf("edges of «%s»: unexpected value %T", id, r.Values[0])
		}
		e, err := edgeFromRelationship(rel, getString(r, "from"), getString(r, "to"))
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func (s *store) read(ctx context.Context, f func(neo4j.SessionWithContext) error) error {
	sess := s.newSession(ctx, neo4j.AccessModeRead)
	defer sess.Close(ctx)
	return f(sess)
}

func (s *store) write(ctx context.Context, cypher string, params map[string]any) error {
	sess := s.newSession(ctx, neo4j.AccessModeWrite)
	defer sess.Close(ctx)
	_, err := collect(ctx, sess, cypher, params)
	return err
}

func (s *store) Vertex(ctx context.Context, id graph.VertexID) (v *graph.Vertex, err error) {
	err = s.read(ctx, func(sess neo4j.SessionWithContext) error {
		v, err = vertex(ctx, sess, id)
		return err
	})
	return v, err
}

func (s *store) VerticesByLabel(ctx context.Context, label string) (vv []*graph.Vertex, err error) {
	err = s.read(ctx, func(sess neo4j.SessionWithContext) error {
		vv, err = verticesByLabel(ctx, sess, label)
		return err
	})
	return vv, err
}

func (s *store) OutEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) (ee []*graph.Edge, err error) {
	err = s.read(ctx, func(sess neo4j.SessionWithContext) error {
		ee, err = edges(ctx, sess, qOutEdges, id, typ)
		return err
	})
	return ee, err
}

func (s *store) InEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) (ee []*graph.Edge, err error) {
	err = s.read(ctx, func(sess neo4j.SessionWithContext) error {
		ee, err = edges(ctx, sess, qInEdges, id, typ)
		return err
	})
	return ee, err
}

func (s *store) Branch(ctx context.Context, name string) (b *graph.Branch, err error) {
	if name == graph.DefaultBranch {
		return graph.NewDefaultBranch(), nil
	}
	err = s.read(ctx, func(sess neo4j.SessionWithContext) error {
		records, err := collect(ctx, sess, qBranch, map[string]any{"name": name})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("%w: «%s»", graph.ErrBranchNotFound, name)
		}
		n, ok := records[0].Values[0].(neo4j.Node)
		if !ok {
			// notest
			return fmt.Errorf("branch «%s»: unexpected value %T", name, records[0].Values[0])
		}
		b, err = branchFromNode(n)
		return err
	})
	return b, err
}

func (s *store) PutVertex(ctx context.Context, v *graph.Vertex) error {
	props, err := json.Marshal(v.Props)
	if err != nil {
		return err
	}
	labels := ""
	for i, l := range v.Labels {
		if i > 0 {
			labels += ":"
		}
		labels += quote(l)
	}
	return s.write(ctx, fmt.Sprintf(qPutVertex, labels), map[string]any{
		"id":    string(v.ID),
		"seq":   s.seq.Add(1),
		"props": string(props),
	})
}

func (s *store) PutEdge(ctx context.Context, e *graph.Edge) error {
	return s.write(ctx, fmt.Sprintf(qPutEdge, quote(string(e.Type))), map[string]any{
		"from":  string(e.From),
		"to":    string(e.To),
		"eid":   e.ID,
		"seq":   s.seq.Add(1),
		"props": edgeProps(e),
	})
}

func (s *store) PutBranch(ctx context.Context, b *graph.Branch) error {
	return s.write(ctx, qPutBranch, map[string]any{"name": b.Name, "props": branchProps(b)})
}

func (s *store) ReadSession(ctx context.Context) (graph.ISession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{store: s, s: s.newSession(ctx, neo4j.AccessModeRead)}, nil
}

func (s *store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *session) Vertex(ctx context.Context, id graph.VertexID) (*graph.Vertex, error) {
	return vertex(ctx, s.s, id)
}

func (s *session) VerticesByLabel(ctx context.Context, label string) ([]*graph.Vertex, error) {
	return verticesByLabel(ctx, s.s, label)
}

func (s *session) OutEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	return edges(ctx, s.s, qOutEdges, id, typ)
}

func (s *session) InEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	return edges(ctx, s.s, qInEdges, id, typ)
}

func (s *session) Execute(ctx context.Context, q graph.IQuery) ([]graph.Row, error) {
	if s.closed.Load() {
		return nil, graph.ErrSessionClosed
	}
	return graph.ExecuteQuery(ctx, s, q)
}

func (s *session) Close(ctx context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.s.Close(ctx)
}

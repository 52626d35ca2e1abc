/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/graphcheck/pkg/graph"
)

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{verticesBucketName, labelsBucketName, edgesBucketName, outBucketName, inBucketName, branchesBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		b := tx.Bucket([]byte(branchesBucketName))
		if b.Get([]byte(graph.DefaultBranch)) != nil {
			return nil
		}
		data, err := json.Marshal(graph.NewDefaultBranch())
		if err != nil {
			// notest
			return err
		}
		return b.Put([]byte(graph.DefaultBranch), data)
	})
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, fmt.Errorf("%w: «%s»", ErrBucketNotFound, name)
	}
	return b, nil
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// Returns value by key, decoded values are cached
func (r txReader) get(bucketName, prefix string, key []byte) ([]byte, error) {
	ck := append([]byte(prefix), key...)
	if data, ok := r.cache.HasGet(nil, ck); ok {
		return data, nil
	}
	b, err := bucket(r.tx, bucketName)
	if err != nil {
		return nil, err
	}
	data := b.Get(key)
	if data == nil {
		return nil, nil
	}
	r.cache.Set(ck, data)
	return data, nil
}

func (r txReader) Vertex(_ context.Context, id graph.VertexID) (*graph.Vertex, error) {
	data, err := r.get(verticesBucketName, vertexCachePrefix, []byte(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: «%s»", graph.ErrVertexNotFound, id)
	}
	v := &graph.Vertex{}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("%v: %w", id, err)
	}
	return v, nil
}

func (r txReader) VerticesByLabel(ctx context.Context, label string) ([]*graph.Vertex, error) {
	labels, err := bucket(r.tx, labelsBucketName)
	if err != nil {
		return nil, err
	}
	lb := labels.Bucket([]byte(label))
	if lb == nil {
		return nil, nil
	}
	res := []*graph.Vertex{}
	err = lb.ForEach(func(_, id []byte) error {
		v, err := r.Vertex(ctx, graph.VertexID(id))
		if err != nil {
			return err
		}
		res = append(res, v)
		return nil
	})
	return res, err
}

func (r txReader) edges(indexBucketName string, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	index, err := bucket(r.tx, indexBucketName)
	if err != nil {
		return nil, err
	}
	vb := index.Bucket([]byte(id))
	if vb == nil {
		return nil, nil
	}
	res := []*graph.Edge{}
	err = vb.ForEach(func(_, edgeID []byte) error {
		data, err := r.get(edgesBucketName, edgeCachePrefix, edgeID)
		if err != nil {
			return err
		}
		if data == nil {
			// notest
			return fmt.Errorf("edge «%s» is indexed but not found", edgeID)
		}
		e := &graph.Edge{}
		if err := json.Unmarshal(data, e); err != nil {
			return fmt.Errorf("edge «%s»: %w", edgeID, err)
		}
		if e.Type == typ {
			res = append(res, e)
		}
		return nil
	})
	return res, err
}

func (r txReader) OutEdges(_ context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	return r.edges(outBucketName, id, typ)
}

func (r txReader) InEdges(_ context.Context, id graph.VertexID, typ graph.EdgeType) ([]*graph.Edge, error) {
	return r.edges(inBucketName, id, typ)
}

func (r txReader) branch(name string) (*graph.Branch, error) {
	b, err := bucket(r.tx, branchesBucketName)
	if err != nil {
		return nil, err
	}
	data := b.Get([]byte(name))
	if data == nil {
		return nil, fmt.Errorf("%w: «%s»", graph.ErrBranchNotFound, name)
	}
	br := &graph.Branch{}
	return br, json.Unmarshal(data, br)
}

func (s *store) view(f func(r txReader) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return f(txReader{tx: tx, cache: s.cache})
	})
}

func (s *store) Vertex(ctx context.Context, id graph.VertexID) (v *graph.Vertex, err error) {
	err = s.view(func(r txReader) error {
		v, err = r.Vertex(ctx, id)
		return err
	})
	return v, err
}

func (s *store) VerticesByLabel(ctx context.Context, label string) (vv []*graph.Vertex, err error) {
	err = s.view(func(r txReader) error {
		vv, err = r.VerticesByLabel(ctx, label)
		return err
	})
	return vv, err
}

func (s *store) OutEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) (ee []*graph.Edge, err error) {
	err = s.view(func(r txReader) error {
		ee, err = r.OutEdges(ctx, id, typ)
		return err
	})
	return ee, err
}

func (s *store) InEdges(ctx context.Context, id graph.VertexID, typ graph.EdgeType) (ee []*graph.Edge, err error) {
	err = s.view(func(r txReader) error {
		ee, err = r.InEdges(ctx, id, typ)
		return err
	})
	return ee, err
}

func (s *store) Branch(_ context.Context, name string) (b *graph.Branch, err error) {
	err = s.view(func(r txReader) error {
		b, err = r.branch(name)
		return err
	})
	return b, err
}

func (s *store) PutVertex(_ context.Context, v *graph.Vertex) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		vertices, err := bucket(tx, verticesBucketName)
		if err != nil {
			return err
		}
		exists := vertices.Get([]byte(v.ID)) != nil
		if err := vertices.Put([]byte(v.ID), data); err != nil {
			return err
		}
		if exists {
			return nil
		}
		labels, err := bucket(tx, labelsBucketName)
		if err != nil {
			return err
		}
		for _, l := range v.Labels {
			lb, err := labels.CreateBucketIfNotExists([]byte(l))
			if err != nil {
				return err
			}
			seq, err := lb.NextSequence()
			if err != nil {
				return err
			}
			if err := lb.Put(seqKey(seq), []byte(v.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		s.cache.Set([]byte(vertexCachePrefix+string(v.ID)), data)
	}
	return err
}

func (s *store) PutEdge(_ context.Context, e *graph.Edge) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		edges, err := bucket(tx, edgesBucketName)
		if err != nil {
			return err
		}
		exists := edges.Get([]byte(e.ID)) != nil
		if err := edges.Put([]byte(e.ID), data); err != nil {
			return err
		}
		if exists {
			return nil
		}
		for _, ix := range []struct {
			name   string
			vertex graph.VertexID
		}{{outBucketName, e.From}, {inBucketName, e.To}} {
			index, err := bucket(tx, ix.name)
			if err != nil {
				return err
			}
			vb, err := index.CreateBucketIfNotExists([]byte(ix.vertex))
			if err != nil {
				return err
			}
			seq, err := vb.NextSequence()
			if err != nil {
				return err
			}
			if err := vb.Put(seqKey(seq), []byte(e.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		s.cache.Set([]byte(edgeCachePrefix+e.ID), data)
	}
	return err
}

func (s *store) PutBranch(_ context.Context, b *graph.Branch) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		branches, err := bucket(tx, branchesBucketName)
		if err != nil {
			return err
		}
		return branches.Put([]byte(b.Name), data)
	})
}

// Session holds read transaction until closed
func (s *store) ReadSession(ctx context.Context) (graph.ISession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := s.db.Begin(false)
	if err != nil {
		return nil, err
	}
	return &session{txReader: txReader{tx: tx, cache: s.cache}}, nil
}

func (s *store) Close() error {
	s.cache.Reset()
	return s.db.Close()
}

func (s *session) Execute(ctx context.Context, q graph.IQuery) ([]graph.Row, error) {
	if s.closed.Load() {
		return nil, graph.ErrSessionClosed
	}
	return graph.ExecuteQuery(ctx, s, q)
}

func (s *session) Close(context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.tx.Rollback()
}

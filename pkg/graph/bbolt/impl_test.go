/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/graph"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	dbPath := filepath.Join(t.TempDir(), "graph.db")
	store, err := Provide(ParamsType{DBPath: dbPath})
	require.NoError(err)

	b := graph.NewBuilder(store)
	dev, err := b.CreateNode(ctx, graph.NodeSpec{Kind: "Device", Branch: graph.DefaultBranch, At: t0, Attributes: map[string]any{"name": "dev1", "port": 22}})
	require.NoError(err)
	require.NoError(b.SetAttribute(ctx, dev, "name", "dev1-v2", graph.DefaultBranch, t0.Add(time.Hour)))

	check := func(store Store) {
		s, err := store.ReadSession(ctx)
		require.NoError(err)
		defer s.Close(ctx)

		main, err := store.Branch(ctx, graph.DefaultBranch)
		require.NoError(err)
		fp, err := main.QueryFilterPath(t0.Add(2*time.Hour), true)
		require.NoError(err)
		tr := graph.NewTraversal(s, fp)

		nodes, err := tr.ActiveNodes(ctx, "Device")
		require.NoError(err)
		require.Len(nodes, 1)
		require.Equal(dev, nodes[0].Vertex.ID)
		require.Equal("Device", nodes[0].Vertex.StringProp(graph.PropKind))

		st, err := tr.AttributeValue(ctx, dev, "name")
		require.NoError(err)
		require.Equal("dev1-v2", st.Value)

		st, err = tr.AttributeValue(ctx, dev, "port")
		require.NoError(err)
		require.EqualValues(22, st.Value)
	}
	check(store)

	t.Run("data survives reopen", func(t *testing.T) {
		require.NoError(store.Close())
		reopened, err := Provide(ParamsType{DBPath: dbPath, CacheBytes: 1024 * 1024})
		require.NoError(err)
		defer reopened.Close()
		check(reopened)

		_, err = reopened.Branch(ctx, "unknown")
		require.ErrorIs(err, graph.ErrBranchNotFound)

		_, err = reopened.Vertex(ctx, "unknown")
		require.ErrorIs(err, graph.ErrVertexNotFound)
	})
}

func TestSession(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	store, err := Provide(ParamsType{DBPath: filepath.Join(t.TempDir(), "graph.db")})
	require.NoError(err)
	defer store.Close()

	require.NoError(store.PutBranch(ctx, graph.NewBranch("b1", time.Now())))
	br, err := store.Branch(ctx, "b1")
	require.NoError(err)
	require.Equal(graph.BranchLevel, br.Level)

	s, err := store.ReadSession(ctx)
	require.NoError(err)
	vv, err := s.VerticesByLabel(ctx, graph.LabelNode)
	require.NoError(err)
	require.Empty(vv)

	require.NoError(s.Close(ctx))
	require.NoError(s.Close(ctx))
	_, err = s.Execute(ctx, nil)
	require.ErrorIs(err, graph.ErrSessionClosed)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/graph/mem"
	"github.com/voedger/graphcheck/pkg/schema"
)

const testFixture = `
at: 2025-01-01T00:00:00Z
branches:
  - name: main
    default: true
  - name: feature1
    branched_from: 2025-01-01T01:00:00Z
nodes:
  - id: site1
    kind: Site
    attributes: {name: hq}
  - id: dev1
    kind: Device
    attributes: {name: dev1, descr: null}
  - id: dev2
    kind: Device
    attributes: {name: dev2}
relationships:
  - id: r1
    node: dev1
    peer: site1
    identifier: device__site
  - id: r2
    node: dev2
    peer: site1
    identifier: device__site
updates:
  - node: dev1
    attribute: name
    value: dev1-renamed
    branch: feature1
    at: 2025-01-01T02:00:00Z
removals:
  - relationship: r2
    at: 2025-01-01T00:30:00Z
deletions:
  - node: dev2
    branch: feature1
    at: 2025-01-01T02:00:00Z
`

func TestApply(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	schemas, err := schema.NewRegistry(0)
	require.NoError(err)
	require.NoError(schemas.Set(graph.DefaultBranch,
		&schema.NodeSchema{Kind: "Named", Type: schema.NodeTypeGeneric},
		&schema.NodeSchema{Kind: "Device", InheritFrom: []string{"Named"}},
	))

	f, err := Parse([]byte(testFixture))
	require.NoError(err)
	store := mem.Provide()
	res, err := Apply(ctx, store, f, schemas)
	require.NoError(err)
	require.Equal([]graph.VertexID{"site1", "dev1", "dev2"}, res.Nodes)
	require.Len(res.Relationships, 2)

	named, err := store.VerticesByLabel(ctx, "Named")
	require.NoError(err)
	require.Len(named, 2)

	feature1, err := store.Branch(ctx, "feature1")
	require.NoError(err)
	at := time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)

	traversal := func(b *graph.Branch) *graph.Traversal {
		fp, err := b.QueryFilterPath(at, true)
		require.NoError(err)
		return graph.NewTraversal(store, fp)
	}

	t.Run("main", func(t *testing.T) {
		tr := traversal(graph.NewDefaultBranch())
		nodes, err := tr.ActiveNodes(ctx, "Device")
		require.NoError(err)
		require.Len(nodes, 2)
		av, err := tr.AttributeValue(ctx, "dev1", "name")
		require.NoError(err)
		require.Equal("dev1", av.Value)
		peers, err := tr.ActivePeers(ctx, "site1", "device__site", graph.DirectionBidirectional)
		require.NoError(err)
		require.Len(peers, 1)
		require.Equal(graph.VertexID("dev1"), peers[0].Peer.ID)
	})

	t.Run("feature1", func(t *testing.T) {
		tr := traversal(feature1)
		nodes, err := tr.ActiveNodes(ctx, "Device")
		require.NoError(err)
		require.Len(nodes, 1)
		av, err := tr.AttributeValue(ctx, "dev1", "name")
		require.NoError(err)
		require.Equal("dev1-renamed", av.Value)
	})
}

func TestInvalid(t *testing.T) {
	require := require.New(t)

	_, err := Parse([]byte("unknown: 1"))
	require.ErrorIs(err, ErrInvalidFixture)

	f, err := Parse([]byte(`
removals:
  - relationship: missing
`))
	require.NoError(err)
	_, err = Apply(context.Background(), mem.Provide(), f, nil)
	require.ErrorIs(err, ErrUnknownRelationship)

	f, err = Parse([]byte(`
nodes:
  - id: n1
    kind: Device
    branch: unknown
`))
	require.NoError(err)
	_, err = Apply(context.Background(), mem.Provide(), f, nil)
	require.ErrorIs(err, graph.ErrBranchNotFound)
}

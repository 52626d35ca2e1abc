/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schemavalidator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/graph/mem"
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
)

func tagSchema() *schema.NodeSchema {
	return &schema.NodeSchema{
		Kind:          "Tag",
		DisplayLabels: []string{"name__value"},
		Attributes:    []*schema.AttributeSchema{{Name: "name", Kind: "Text", Regex: "^[a-z]+$", Unique: true}},
	}
}

func TestValidateAll(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	t0 := time.Now().UTC().Add(-time.Hour)

	schemas, err := schema.NewRegistry(0)
	require.NoError(err)
	require.NoError(schemas.Set(graph.DefaultBranch, tagSchema()))
	n, err := schemas.Get("Tag", graph.DefaultBranch)
	require.NoError(err)

	store := mem.Provide()
	b := graph.NewBuilder(store)
	ids := []graph.VertexID{}
	for _, name := range []string{"ABC", "abc", "abc", "xyz"} {
		id, err := b.CreateNode(ctx, graph.NodeSpec{Kind: "Tag", Branch: graph.DefaultBranch, At: t0, Attributes: map[string]any{"name": name}})
		require.NoError(err)
		ids = append(ids, id)
	}
	mgr := nodes.Provide(store, schemas, 0)
	main := graph.NewDefaultBranch()

	vv, err := ValidateAll(ctx, store, main, []*schema.NodeSchema{n}, mgr, attribute.NewRegexCache(0))
	require.NoError(err)
	require.Len(vv, 3)

	require.Equal(ids[0], vv[0].NodeID)
	require.Equal(fmt.Sprintf("Node ABC (Tag: %s) is not compatible with the constraint 'attribute.regex.update' at 'Tag.name.regex'", ids[0]), vv[0].Message)

	require.ElementsMatch([]graph.VertexID{ids[1], ids[2]}, []graph.VertexID{vv[1].NodeID, vv[2].NodeID})
	require.Equal(fmt.Sprintf("Node abc (Tag: %s) is not compatible with the constraint 'attribute.unique.update' at 'Tag.name.unique'", vv[1].NodeID), vv[1].Message)

	t.Run("skipped when constraint does not apply", func(t *testing.T) {
		plain := tagSchema()
		plain.Attributes[0].Regex = ""
		plain.Attributes[0].Unique = false
		vv, err := ValidateAll(ctx, store, main, []*schema.NodeSchema{plain}, mgr, attribute.NewRegexCache(0))
		require.NoError(err)
		require.Empty(vv)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := NewRegexValidator(n, "unknown", mgr, attribute.NewRegexCache(0))
		require.ErrorIs(err, schema.ErrAttributeNotFound)
	})

	t.Run("invalid request", func(t *testing.T) {
		v, err := NewUniqueValidator(n, "name", mgr)
		require.NoError(err)
		_, err = v.RunValidate(ctx, store, nil)
		require.ErrorIs(err, validators.ErrInvalidRequest)
	})
}

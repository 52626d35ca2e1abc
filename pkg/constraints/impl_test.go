/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/graph/mem"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func TestProvide(t *testing.T) {
	require := require.New(t)

	schemas, err := schema.NewRegistry(0)
	require.NoError(err)
	r, err := Provide(Deps{DB: mem.Provide(), Schemas: schemas, AttrTypes: attrtypes.Provide()})
	require.NoError(err)

	require.Len(r.Names(), 18)
	for _, name := range ConstraintNames {
		c, ok := r.Get(name)
		require.True(ok, name)
		require.NotNil(c)
	}
	_, ok := r.Get("attribute.label.update")
	require.False(ok)

	t.Run("checkers are shared", func(t *testing.T) {
		min, _ := r.Get(validators.AttributeMinLengthUpdate)
		max, _ := r.Get(validators.AttributeMaxLengthUpdate)
		require.Same(min, max)

		card, _ := r.Get(validators.RelationshipCardinalityUpdate)
		minCount, _ := r.Get(validators.RelationshipMinCountUpdate)
		require.Same(card, minCount)

		parent, _ := r.Get(validators.NodeParentUpdate)
		children, _ := r.Get(validators.NodeChildrenUpdate)
		require.Same(parent, children)
	})

	t.Run("registry is immutable", func(t *testing.T) {
		names := r.Names()
		names[0] = "changed"
		require.NotEqual("changed", r.Names()[0])
		checkers := r.Checkers()
		checkers[0] = nil
		require.NotNil(r.Checkers()[0])
	})
}

func TestUnsupported(t *testing.T) {
	_, err := newRegistry(nil)
	require.ErrorIs(t, err, ErrUnsupportedConstraint)
}

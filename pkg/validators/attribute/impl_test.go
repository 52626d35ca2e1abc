/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/graph/mem"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

type testEnv struct {
	ctx     context.Context
	store   mem.Store
	builder *graph.Builder
	main    *graph.Branch
}

func newTestEnv(t *testing.T) *testEnv {
	store := mem.Provide()
	main, err := store.Branch(context.Background(), graph.DefaultBranch)
	require.NoError(t, err)
	return &testEnv{
		ctx:     context.Background(),
		store:   store,
		builder: graph.NewBuilder(store),
		main:    main,
	}
}

func (e *testEnv) node(t *testing.T, kind string, attrs map[string]any) graph.VertexID {
	id, err := e.builder.CreateNode(e.ctx, graph.NodeSpec{Kind: kind, Branch: graph.DefaultBranch, At: t0, Attributes: attrs})
	require.NoError(t, err)
	return id
}

func (e *testEnv) request(n *schema.NodeSchema, field, property, constraint string) *validators.SchemaConstraintValidatorRequest {
	return &validators.SchemaConstraintValidatorRequest{
		NodeSchema:     n,
		SchemaPath:     schema.SchemaPath{PathType: schema.PathTypeAttribute, SchemaKind: n.Kind, FieldName: field, PropertyName: property},
		ConstraintName: constraint,
		Branch:         e.main,
		At:             t0.Add(time.Hour),
	}
}

func check(t *testing.T, c validators.IConstraintChecker, req *validators.SchemaConstraintValidatorRequest) []*validators.GroupedDataPaths {
	require.True(t, c.Supports(req))
	res, err := c.Check(context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestChoices(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	hot := env.node(t, "TestChoice", map[string]any{"temperature_scale": "celsius"})
	env.node(t, "TestChoice", map[string]any{"temperature_scale": "fahrenheit"})
	env.node(t, "TestChoice", map[string]any{"temperature_scale": nil})

	n := &schema.NodeSchema{Kind: "TestChoice", Attributes: []*schema.AttributeSchema{
		{Name: "temperature_scale", Kind: attrtypes.KindDropdown, Optional: true, Choices: []schema.Choice{{Name: "fahrenheit"}}},
	}}
	res := check(t, newChoicesChecker(env.store), env.request(n, "temperature_scale", schema.PropertyChoices, validators.AttributeChoicesUpdate))
	require.Len(res, 1)
	paths := res[0].All()
	require.Len(paths, 1)
	require.Equal(hot, paths[0].NodeID)
	require.Equal("temperature_scale", paths[0].FieldName)
	require.Equal("celsius", paths[0].Value)
	require.Equal(graph.DefaultBranch, paths[0].Branch)
	require.Equal(validators.ResourceTypeData, paths[0].ResourceType)
}

func TestUnique(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	a := env.node(t, "Person", map[string]any{"name": "duplicate"})
	b := env.node(t, "Person", map[string]any{"name": "duplicate"})
	env.node(t, "Person", map[string]any{"name": "single"})
	env.node(t, "Person", map[string]any{"name": nil})
	env.node(t, "Person", map[string]any{"name": nil})

	n := &schema.NodeSchema{Kind: "Person", Attributes: []*schema.AttributeSchema{{Name: "name", Kind: attrtypes.KindText, Unique: true}}}
	c := &uniqueChecker{db: env.store}
	res := check(t, c, env.request(n, "name", schema.PropertyUnique, validators.AttributeUniqueUpdate))
	require.Len(res, 1)
	require.Equal([]string{"duplicate"}, res[0].Keys())
	paths := res[0].Get("duplicate")
	require.Len(paths, 2)
	require.ElementsMatch([]graph.VertexID{a, b}, []graph.VertexID{paths[0].NodeID, paths[1].NodeID})

	t.Run("values of different types", func(t *testing.T) {
		env := newTestEnv(t)
		one := env.node(t, "Person", map[string]any{"name": 1})
		another := env.node(t, "Person", map[string]any{"name": 1})
		env.node(t, "Person", map[string]any{"name": "1"})
		res := check(t, &uniqueChecker{db: env.store}, env.request(n, "name", schema.PropertyUnique, validators.AttributeUniqueUpdate))
		require.Equal([]string{"1"}, res[0].Keys())
		paths := res[0].Get("1")
		require.ElementsMatch([]graph.VertexID{one, another}, []graph.VertexID{paths[0].NodeID, paths[1].NodeID})

		env.node(t, "Person", map[string]any{"name": "1"})
		res = check(t, &uniqueChecker{db: env.store}, env.request(n, "name", schema.PropertyUnique, validators.AttributeUniqueUpdate))
		require.Len(res[0].Keys(), 2)
		require.Len(res[0].All(), 4)
	})

	t.Run("not unique is no-op", func(t *testing.T) {
		n.Attributes[0].Unique = false
		res := check(t, c, env.request(n, "name", schema.PropertyUnique, validators.AttributeUniqueUpdate))
		require.Empty(res)
	})
}

func TestRegex(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	bad := env.node(t, "Tag", map[string]any{"name": "ABC123"})
	env.node(t, "Tag", map[string]any{"name": "abc"})
	env.node(t, "Tag", map[string]any{"name": nil})

	n := &schema.NodeSchema{Kind: "Tag", Attributes: []*schema.AttributeSchema{{Name: "name", Kind: attrtypes.KindText, Regex: "^[a-z]+$"}}}
	c := newRegexChecker(env.store, NewRegexCache(0))
	res := check(t, c, env.request(n, "name", schema.PropertyRegex, validators.AttributeRegexUpdate))
	require.Len(res, 1)
	paths := res[0].All()
	require.Len(paths, 1)
	require.Equal(bad, paths[0].NodeID)
	require.Equal("ABC123", paths[0].Value)
	require.Equal("Tag", paths[0].Kind)

	t.Run("invalid regex", func(t *testing.T) {
		n.Attributes[0].Regex = "[a-"
		_, err := c.Check(env.ctx, env.request(n, "name", schema.PropertyRegex, validators.AttributeRegexUpdate))
		require.ErrorIs(err, ErrInvalidRegex)
	})

	t.Run("empty regex is no-op", func(t *testing.T) {
		n.Attributes[0].Regex = ""
		res := check(t, c, env.request(n, "name", schema.PropertyRegex, validators.AttributeRegexUpdate))
		require.Empty(res)
	})
}

func TestLength(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	short := env.node(t, "Tag", map[string]any{"name": "a"})
	env.node(t, "Tag", map[string]any{"name": "abc"})
	long := env.node(t, "Tag", map[string]any{"name": "abcdefgh"})

	n := &schema.NodeSchema{Kind: "Tag", Attributes: []*schema.AttributeSchema{{Name: "name", Kind: attrtypes.KindText, MinLength: intPtr(2), MaxLength: intPtr(5)}}}
	c := newLengthChecker(env.store)

	for _, constraint := range []string{validators.AttributeMinLengthUpdate, validators.AttributeMaxLengthUpdate} {
		t.Run(constraint, func(t *testing.T) {
			res := check(t, c, env.request(n, "name", "", constraint))
			require.Len(res, 1)
			ids := []graph.VertexID{}
			for _, p := range res[0].All() {
				ids = append(ids, p.NodeID)
			}
			require.Equal([]graph.VertexID{short, long}, ids)
		})
	}

	t.Run("no bounds is no-op", func(t *testing.T) {
		n.Attributes[0].MinLength, n.Attributes[0].MaxLength = nil, nil
		res := check(t, c, env.request(n, "name", schema.PropertyMinLength, validators.AttributeMinLengthUpdate))
		require.Empty(res)
	})
}

func TestEnumAndKind(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	env.node(t, "Port", map[string]any{"speed": 1000, "mac": "00:1a:2b:3c:4d:5e"})
	bad := env.node(t, "Port", map[string]any{"speed": 25, "mac": "not-a-mac"})

	n := &schema.NodeSchema{Kind: "Port", Attributes: []*schema.AttributeSchema{
		{Name: "speed", Kind: attrtypes.KindNumber, Enum: []any{100, 1000}},
		{Name: "mac", Kind: attrtypes.KindMacAddress},
	}}

	t.Run("enum", func(t *testing.T) {
		res := check(t, newEnumChecker(env.store), env.request(n, "speed", schema.PropertyEnum, validators.AttributeEnumUpdate))
		require.Len(res, 1)
		require.Len(res[0].All(), 1)
		require.Equal(bad, res[0].All()[0].NodeID)
	})

	t.Run("kind", func(t *testing.T) {
		res := check(t, newKindChecker(env.store, attrtypes.Provide()), env.request(n, "mac", schema.PropertyKind, validators.AttributeKindUpdate))
		require.Len(res, 1)
		require.Len(res[0].All(), 1)
		require.Equal("not-a-mac", res[0].All()[0].Value)
	})
}

func TestOptional(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	env.node(t, "Device", map[string]any{"descr": "x"})
	empty := env.node(t, "Device", map[string]any{"descr": nil})
	missing := env.node(t, "Device", nil)

	n := &schema.NodeSchema{Kind: "Device", Attributes: []*schema.AttributeSchema{{Name: "descr", Kind: attrtypes.KindText}}}
	c := newOptionalChecker(env.store)
	res := check(t, c, env.request(n, "descr", schema.PropertyOptional, validators.AttributeOptionalUpdate))
	require.Len(res, 1)
	require.Equal([]string{"NULL"}, res[0].Keys())
	ids := []graph.VertexID{}
	for _, p := range res[0].All() {
		ids = append(ids, p.NodeID)
	}
	require.ElementsMatch([]graph.VertexID{empty, missing}, ids)

	t.Run("still optional is no-op", func(t *testing.T) {
		n.Attributes[0].Optional = true
		res := check(t, c, env.request(n, "descr", schema.PropertyOptional, validators.AttributeOptionalUpdate))
		require.Empty(res)
	})
}

func TestProvideCheckers(t *testing.T) {
	require := require.New(t)
	cc := ProvideCheckers(mem.Provide(), attrtypes.Provide(), 0)
	names := map[string]bool{}
	for _, c := range cc {
		names[c.Name()] = true
	}
	require.Len(names, 7)
	require.True(names[lengthCheckerName])
}

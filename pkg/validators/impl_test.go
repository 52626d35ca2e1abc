/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testSchema() *schema.NodeSchema {
	return &schema.NodeSchema{
		Kind:          "Device",
		Type:          schema.NodeTypeNode,
		DisplayLabels: []string{"name__value"},
		Attributes:    []*schema.AttributeSchema{{Name: "name", Kind: "Text", Regex: "^[a-z]+$"}},
	}
}

type mockNodes struct {
	mock.Mock
}

func (m *mockNodes) GetMany(ctx context.Context, ids []graph.VertexID, branch *graph.Branch, at time.Time, fields []string) (map[graph.VertexID]*nodes.Node, error) {
	args := m.Called(ctx, ids, branch, at, fields)
	res, _ := args.Get(0).(map[graph.VertexID]*nodes.Node)
	return res, args.Error(1)
}

type testChecker struct {
	name   string
	result []*GroupedDataPaths
	err    error
	calls  int
}

func (c *testChecker) Name() string { return c.name }

func (c *testChecker) Supports(req *SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == c.name
}

func (c *testChecker) Check(_ context.Context, req *SchemaConstraintValidatorRequest) ([]*GroupedDataPaths, error) {
	c.calls++
	if req.At.IsZero() {
		return nil, errors.New("time is not fixed")
	}
	return c.result, c.err
}

type testRegistry []IConstraintChecker

func (r testRegistry) Checkers() []IConstraintChecker { return r }

func (r testRegistry) Get(name string) (IConstraintChecker, bool) {
	for _, c := range r {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func (r testRegistry) Names() []string {
	res := []string{}
	for _, c := range r {
		res = append(res, c.Name())
	}
	sort.Strings(res)
	return res
}

func regexRequest() *SchemaConstraintValidatorRequest {
	return &SchemaConstraintValidatorRequest{
		NodeSchema:     testSchema(),
		SchemaPath:     schema.SchemaPath{PathType: schema.PathTypeAttribute, SchemaKind: "Device", FieldName: "name", PropertyName: schema.PropertyRegex},
		ConstraintName: AttributeRegexUpdate,
		Branch:         graph.NewDefaultBranch(),
		At:             t0,
	}
}

func violatingPaths() []*GroupedDataPaths {
	g := NewGroupedDataPaths()
	g.AddPath(DataPath{NodeID: "n1", Kind: "Device", FieldName: "name", Value: "ABC"})
	g.AddPath(DataPath{NodeID: "n2", Kind: "Device", FieldName: "name", Value: "DEF"})
	return []*GroupedDataPaths{g}
}

func TestRunConstraints(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	req := regexRequest()

	t.Run("labels are resolved before messages", func(t *testing.T) {
		mgr := &mockNodes{}
		mgr.On("GetMany", ctx, []graph.VertexID{"n1", "n2"}, req.Branch, t0, []string{"name"}).Return(map[graph.VertexID]*nodes.Node{
			"n1": {ID: "n1", Kind: "Device", Schema: testSchema(), Values: map[string]any{"name": "ABC"}},
		}, nil)
		checker := &testChecker{name: AttributeRegexUpdate, result: violatingPaths()}
		c := NewAggregatedConstraintChecker(testRegistry{checker, &testChecker{name: AttributeEnumUpdate}}, mgr, nil)

		vv, err := c.RunConstraints(ctx, req)
		require.NoError(err)
		require.Len(vv, 2)
		require.Equal("ABC", vv[0].DisplayLabel)
		require.Equal("Node ABC (Device: n1)", vv[0].FullDisplayLabel)
		require.Equal("Node ABC (Device: n1) is not compatible with the constraint 'attribute.regex.update' at 'Device.name.regex'", vv[0].Message)
		require.Equal("Node (Device: n2)", vv[1].DisplayLabel)
		require.True(strings.HasPrefix(vv[1].Message, "Node (Device: n2) is not compatible"))
		mgr.AssertExpectations(t)

		t.Run("idempotent", func(t *testing.T) {
			again, err := c.RunConstraints(ctx, req)
			require.NoError(err)
			require.Equal(vv, again)
		})
	})

	t.Run("node validation error degrades labels", func(t *testing.T) {
		mgr := &mockNodes{}
		mgr.On("GetMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nodes.ErrNodeValidation)
		reg := prometheus.NewRegistry()
		m, err := NewMetrics(reg)
		require.NoError(err)
		c := NewAggregatedConstraintChecker(testRegistry{&testChecker{name: AttributeRegexUpdate, result: violatingPaths()}}, mgr, m)

		vv, err := c.RunConstraints(ctx, req)
		require.NoError(err)
		require.Len(vv, 2)
		require.Equal("Node (Device: n1)", vv[0].FullDisplayLabel)

		mfs, err := reg.Gather()
		require.NoError(err)
		found := false
		for _, mf := range mfs {
			if mf.GetName() == "graphcheck_label_resolution_failures_total" {
				found = true
				require.Equal(float64(1), mf.GetMetric()[0].GetCounter().GetValue())
			}
		}
		require.True(found)
	})

	t.Run("other node errors are returned", func(t *testing.T) {
		mgr := &mockNodes{}
		testErr := errors.New("db is down")
		mgr.On("GetMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, testErr)
		c := NewAggregatedConstraintChecker(testRegistry{&testChecker{name: AttributeRegexUpdate, result: violatingPaths()}}, mgr, nil)
		_, err := c.RunConstraints(ctx, req)
		require.ErrorIs(err, testErr)
	})

	t.Run("fail fast", func(t *testing.T) {
		testErr := errors.New("query failed")
		failing := &testChecker{name: AttributeRegexUpdate, err: testErr}
		other := &testChecker{name: AttributeRegexUpdate}
		c := NewAggregatedConstraintChecker(testRegistry{failing, other}, &mockNodes{}, nil)
		_, err := c.RunConstraints(ctx, req)
		require.ErrorIs(err, ErrCheckerFailed)
		require.ErrorIs(err, testErr)
		require.Equal(0, other.calls)
	})

	t.Run("no violations skips label resolution", func(t *testing.T) {
		mgr := &mockNodes{}
		c := NewAggregatedConstraintChecker(testRegistry{&testChecker{name: AttributeRegexUpdate}}, mgr, nil)
		vv, err := c.RunConstraints(ctx, req)
		require.NoError(err)
		require.Empty(vv)
		mgr.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("time is fixed when not specified", func(t *testing.T) {
		c := NewAggregatedConstraintChecker(testRegistry{&testChecker{name: AttributeRegexUpdate}}, &mockNodes{}, nil)
		r := regexRequest()
		r.At = time.Time{}
		_, err := c.RunConstraints(ctx, r)
		require.NoError(err)
		require.True(r.At.IsZero())
	})

	t.Run("invalid request", func(t *testing.T) {
		c := NewAggregatedConstraintChecker(testRegistry{}, &mockNodes{}, nil)
		_, err := c.RunConstraints(ctx, &SchemaConstraintValidatorRequest{})
		require.ErrorIs(err, ErrInvalidRequest)
	})
}

func TestSchemaLevelPath(t *testing.T) {
	require := require.New(t)

	vv := BuildViolations([]DataPath{{Kind: "Device", Value: []string{"GenericB"}}}, nil)
	RenderMessages(vv, NodeInheritFromUpdate, "node.Device.inherit_from")
	require.Equal("Node (Device)", vv[0].DisplayLabel)
	require.Equal("Node (Device) is not compatible with the constraint 'node.inherit_from.update' at 'node.Device.inherit_from'", vv[0].Message)
}

func TestRunner(t *testing.T) {
	require := require.New(t)
	mgr := &mockNodes{}
	mgr.On("GetMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(map[graph.VertexID]*nodes.Node{}, nil)
	c := NewAggregatedConstraintChecker(testRegistry{&testChecker{name: AttributeRegexUpdate, result: violatingPaths()}}, mgr, nil)

	requests := []*SchemaConstraintValidatorRequest{regexRequest(), regexRequest(), regexRequest()}
	requests[1].ConstraintName = AttributeEnumUpdate
	res, err := NewRunner(c, 0).Run(context.Background(), requests)
	require.NoError(err)
	require.Len(res, 3)
	require.Same(requests[1], res[1].Request)
	require.Empty(res[1].Violations)
	require.Equal(4, CountViolations(res))
}

func TestDeterminer(t *testing.T) {
	require := require.New(t)

	schemas, err := schema.NewRegistry(0)
	require.NoError(err)
	require.NoError(schemas.Set(graph.DefaultBranch, testSchema()))

	d := NewDeterminer(testRegistry{&testChecker{name: AttributeRegexUpdate}, &testChecker{name: AttributeUniqueUpdate}})
	changed := testSchema()
	changed.Attributes[0].Regex = "^[A-Z]+$"
	changed.Attributes[0].Unique = true
	changed.Attributes[0].Optional = true
	newKind := &schema.NodeSchema{Kind: "Rack"}

	reqs, err := d.RequestsForAll(schemas, []*schema.NodeSchema{changed, newKind}, graph.NewDefaultBranch(), t0)
	require.NoError(err)
	names := []string{}
	for _, r := range reqs {
		names = append(names, r.ConstraintName)
		require.Equal("name", r.SchemaPath.FieldName)
		require.Equal(t0, r.At)
	}
	require.Equal([]string{AttributeRegexUpdate, AttributeUniqueUpdate}, names)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Returns true if current attribute value violates the constraint
type predicate func(av graph.AttributeState) (bool, error)

// Selects current attribute values of active nodes which violate the predicate
type valueQuery struct {
	validators.QueryBase
	name      string
	attribute string
	violates  predicate
}

func newValueQuery(req *validators.SchemaConstraintValidatorRequest, name string, violates predicate) (*valueQuery, error) {
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	return &valueQuery{
		QueryBase: base,
		name:      name,
		attribute: req.SchemaPath.FieldName,
		violates:  violates,
	}, nil
}

func (q *valueQuery) Name() string { return q.name }

func (q *valueQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	rows := []graph.Row{}
	err := q.ForEachAttributeValue(ctx, reader, q.attribute, func(n graph.NodeState, av graph.AttributeState) error {
		bad, err := q.violates(av)
		if err != nil {
			return err
		}
		if bad {
			rows = append(rows, validators.AttributeRow(n, av))
		}
		return nil
	})
	return rows, err
}

func (q *valueQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	res := validators.NewGroupedDataPaths()
	for _, r := range rows {
		res.AddPath(q.DataPath(schema.PathTypeAttribute, r))
	}
	return res, nil
}

// Values which are set and not null
func hasValue(av graph.AttributeState) bool {
	return av.Found && av.Value != nil
}

// checker runs single value query built by the build func
type checker struct {
	name      string
	supported []string
	db        graph.IDatabase
	build     func(req *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error)
	skip      func(attr *schema.AttributeSchema) bool
}

func (c *checker) Name() string { return c.name }

func (c *checker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	for _, s := range c.supported {
		if req.ConstraintName == s {
			return true
		}
	}
	return false
}

func (c *checker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	attr, err := req.NodeSchema.Attribute(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	if c.skip != nil && c.skip(attr) {
		return []*validators.GroupedDataPaths{}, nil
	}
	p, err := c.build(req, attr)
	if err != nil {
		return nil, err
	}
	q, err := newValueQuery(req, c.name, p)
	if err != nil {
		return nil, err
	}
	res, err := validators.RunQuery(ctx, c.db, q)
	if err != nil {
		return nil, err
	}
	return []*validators.GroupedDataPaths{res}, nil
}

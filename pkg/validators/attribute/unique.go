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

// Selects nodes which share the attribute value with at least one other node
type uniqueQuery struct {
	validators.QueryBase
	attribute string
}

func (q *uniqueQuery) Name() string { return validators.AttributeUniqueUpdate }

func (q *uniqueQuery) Run(ctx context.Context, reader graph.IGraphReader) ([]graph.Row, error) {
	keys := []string{}
	byValue := map[string][]graph.Row{}
	err := q.ForEachAttributeValue(ctx, reader, q.attribute, func(n graph.NodeState, av graph.AttributeState) error {
		if !hasValue(av) {
			return nil
		}
		k := validators.TypedValueKey(av.Value)
		if _, ok := byValue[k]; !ok {
			keys = append(keys, k)
		}
		byValue[k] = append(byValue[k], validators.AttributeRow(n, av))
		return nil
	})
	if err != nil {
		return nil, err
	}
	rows := []graph.Row{}
	for _, k := range keys {
		if len(byValue[k]) > 1 {
			rows = append(rows, byValue[k]...)
		}
	}
	return rows, nil
}

func (q *uniqueQuery) DataPaths(rows []graph.Row) (*validators.GroupedDataPaths, error) {
	res := validators.NewGroupedDataPaths()
	names := validators.NewKeyNames()
	for _, r := range rows {
		p := q.DataPath(schema.PathTypeAttribute, r)
		res.Add(names.Name(validators.TypedValueKey(p.Value), p.GroupingKey()), p)
	}
	return res, nil
}

// Returns query which selects nodes sharing value of the request attribute
func NewUniqueQuery(req *validators.SchemaConstraintValidatorRequest) (validators.IConstraintQuery, error) {
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	return &uniqueQuery{QueryBase: base, attribute: req.SchemaPath.FieldName}, nil
}

type uniqueChecker struct {
	db graph.IDatabase
}

func (c *uniqueChecker) Name() string { return validators.AttributeUniqueUpdate }

func (c *uniqueChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == validators.AttributeUniqueUpdate
}

func (c *uniqueChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	attr, err := req.NodeSchema.Attribute(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	if !attr.Unique {
		return []*validators.GroupedDataPaths{}, nil
	}
	q, err := NewUniqueQuery(req)
	if err != nil {
		return nil, err
	}
	res, err := validators.RunQuery(ctx, c.db, q)
	if err != nil {
		return nil, err
	}
	return []*validators.GroupedDataPaths{res}, nil
}

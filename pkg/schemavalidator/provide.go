/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schemavalidator

import (
	"context"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
)

func attributePath(n *schema.NodeSchema, attr, property string) schema.SchemaPath {
	return schema.SchemaPath{PathType: schema.PathTypeAttribute, SchemaKind: n.Kind, FieldName: attr, PropertyName: property}
}

// Validates attribute values against the attribute regex. Skipped if the attribute has no regex
func NewRegexValidator(n *schema.NodeSchema, attr string, mgr nodes.IManager, regexes *attribute.RegexCache) (*SchemaValidator, error) {
	a, err := n.Attribute(attr)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{
		NodeSchema:     n,
		SchemaPath:     attributePath(n, attr, schema.PropertyRegex),
		ConstraintName: validators.AttributeRegexUpdate,
		nodes:          mgr,
		queries: []QueryFactory{func(req *validators.SchemaConstraintValidatorRequest) (validators.IConstraintQuery, error) {
			return attribute.NewRegexQuery(req, regexes)
		}},
		skip: func() bool { return a.Regex == "" },
	}, nil
}

// Validates attribute values are unique. Skipped if the attribute is not unique
func NewUniqueValidator(n *schema.NodeSchema, attr string, mgr nodes.IManager) (*SchemaValidator, error) {
	a, err := n.Attribute(attr)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{
		NodeSchema:     n,
		SchemaPath:     attributePath(n, attr, schema.PropertyUnique),
		ConstraintName: validators.AttributeUniqueUpdate,
		nodes:          mgr,
		queries:        []QueryFactory{attribute.NewUniqueQuery},
		skip:           func() bool { return !a.Unique },
	}, nil
}

// Returns regex and unique validators of every attribute of the schema
func Provide(n *schema.NodeSchema, mgr nodes.IManager, regexes *attribute.RegexCache) ([]*SchemaValidator, error) {
	res := []*SchemaValidator{}
	for _, a := range n.Attributes {
		rv, err := NewRegexValidator(n, a.Name, mgr, regexes)
		if err != nil {
			return nil, err
		}
		uv, err := NewUniqueValidator(n, a.Name, mgr)
		if err != nil {
			return nil, err
		}
		res = append(res, rv, uv)
	}
	return res, nil
}

// Runs all validators of all schemas on the branch
func ValidateAll(ctx context.Context, db graph.IDatabase, branch *graph.Branch, schemas []*schema.NodeSchema,
	mgr nodes.IManager, regexes *attribute.RegexCache) ([]*validators.SchemaViolation, error) {
	res := []*validators.SchemaViolation{}
	for _, n := range schemas {
		if n.IsGeneric() {
			continue
		}
		vv, err := Provide(n, mgr, regexes)
		if err != nil {
			return nil, err
		}
		for _, v := range vv {
			violations, err := v.RunValidate(ctx, db, branch)
			if err != nil {
				return nil, err
			}
			res = append(res, violations...)
		}
	}
	return res, nil
}

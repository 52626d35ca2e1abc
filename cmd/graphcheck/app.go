/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/constraints"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/schemavalidator"
	"github.com/voedger/graphcheck/pkg/validators"
)

func (a *wiredApp) branch(ctx context.Context, name string) (*graph.Branch, error) {
	if name == "" {
		name = graph.DefaultBranch
	}
	return a.Store.Branch(ctx, name)
}

// Generics sent without `used_by` get it from the registered schema
func (a *wiredApp) prepare(n *schema.NodeSchema, branch string) (*schema.NodeSchema, error) {
	res := n.Clone()
	if err := schema.Normalize(res); err != nil {
		return nil, err
	}
	if res.IsGeneric() && len(res.UsedBy) == 0 {
		current, err := a.Schemas.Get(res.Kind, branch)
		switch {
		case err == nil:
			res.UsedBy = append([]string{}, current.UsedBy...)
		case !errors.Is(err, schema.ErrSchemaNotFound):
			return nil, err
		}
	}
	return res, nil
}

// Field is looked up among attributes first, then among relationships. Empty field addresses the node itself
func schemaPath(n *schema.NodeSchema, field, property string) (schema.SchemaPath, error) {
	p := schema.SchemaPath{SchemaKind: n.Kind, FieldName: field, PropertyName: property}
	switch {
	case field == "":
		p.PathType = schema.PathTypeNode
	case attributeExists(n, field):
		p.PathType = schema.PathTypeAttribute
	case relationshipExists(n, field):
		p.PathType = schema.PathTypeRelationship
	default:
		return p, fmt.Errorf("%w: «%s» has no field «%s»", ErrBadRequest, n.Kind, field)
	}
	return p, nil
}

func attributeExists(n *schema.NodeSchema, name string) bool {
	_, err := n.Attribute(name)
	return err == nil
}

func relationshipExists(n *schema.NodeSchema, name string) bool {
	_, err := n.Relationship(name)
	return err == nil
}

// Checks existing data against a single property of the new schema
func (a *wiredApp) check(ctx context.Context, req checkRequest) (*checkResponse, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("%w: schema is required", ErrBadRequest)
	}
	if req.Property == "" {
		return nil, fmt.Errorf("%w: property is required", ErrBadRequest)
	}
	br, err := a.branch(ctx, req.Branch)
	if err != nil {
		return nil, err
	}
	n, err := a.prepare(req.Schema, br.Name)
	if err != nil {
		return nil, err
	}
	path, err := schemaPath(n, req.Field, req.Property)
	if err != nil {
		return nil, err
	}
	name := req.Constraint
	if name == "" {
		name = fmt.Sprintf("%s.%s.%s", path.PathType, path.PropertyName, validators.ActionUpdate)
	}
	if _, ok := a.Constraints.Get(name); !ok {
		return nil, fmt.Errorf("%w: «%s»", constraints.ErrUnsupportedConstraint, name)
	}
	violations, err := a.Checker.RunConstraints(ctx, &validators.SchemaConstraintValidatorRequest{
		NodeSchema:     n,
		SchemaPath:     path,
		ConstraintName: name,
		Branch:         br,
		At:             req.At,
	})
	if err != nil {
		return nil, err
	}
	return &checkResponse{ConstraintName: name, SchemaPath: path.String(), Violations: violations}, nil
}

// Checks existing data against every changed property of the new schemas
func (a *wiredApp) migrate(ctx context.Context, req migrateRequest) (*migrateResponse, error) {
	br, err := a.branch(ctx, req.Branch)
	if err != nil {
		return nil, err
	}
	changed := make([]*schema.NodeSchema, 0, len(req.Schemas))
	for _, s := range req.Schemas {
		n, err := a.prepare(s, br.Name)
		if err != nil {
			return nil, err
		}
		changed = append(changed, n)
	}
	requests, err := a.Determiner.RequestsForAll(a.Schemas, changed, br, req.At)
	if err != nil {
		return nil, err
	}
	logger.Verbose(fmt.Sprintf("%d constraints to check on branch «%s»", len(requests), br.Name))
	started := time.Now()
	results, err := a.Runner.Run(ctx, requests)
	if err != nil {
		return nil, err
	}
	res := &migrateResponse{Results: make([]checkResponse, 0, len(results))}
	for _, r := range results {
		res.Results = append(res.Results, checkResponse{
			ConstraintName: r.Request.ConstraintName,
			SchemaPath:     r.Request.SchemaPath.String(),
			Violations:     r.Violations,
		})
	}
	res.Violations = validators.CountViolations(results)
	logger.Info(fmt.Sprintf("%d constraints checked in %v, %d violations", len(requests), time.Since(started), res.Violations))
	return res, nil
}

// Runs legacy regex and unique validators against the current schemas
func (a *wiredApp) validate(ctx context.Context, branch string) ([]*validators.SchemaViolation, error) {
	br, err := a.branch(ctx, branch)
	if err != nil {
		return nil, err
	}
	return schemavalidator.ValidateAll(ctx, a.Store, br, a.Schemas.All(br.Name), a.Nodes, a.Regexes)
}

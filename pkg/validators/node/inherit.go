/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package node

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Reports generics removed from inherit_from. Data is not queried
type inheritFromChecker struct {
	schemas schema.ISchemaRegistry
}

func (c *inheritFromChecker) Name() string { return validators.NodeInheritFromUpdate }

func (c *inheritFromChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == validators.NodeInheritFromUpdate
}

func (c *inheritFromChecker) Check(_ context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	cur, err := currentSchema(c.schemas, req)
	if err != nil || cur == nil {
		return []*validators.GroupedDataPaths{}, err
	}
	removed := []string{}
	for _, g := range cur.InheritFrom {
		if !slices.Contains(req.NodeSchema.InheritFrom, g) {
			removed = append(removed, g)
		}
	}
	if len(removed) == 0 {
		return []*validators.GroupedDataPaths{}, nil
	}
	res := validators.NewGroupedDataPaths()
	res.AddPath(validators.DataPath{
		Branch:       req.Branch.Name,
		PathType:     schema.PathTypeNode,
		ResourceType: validators.ResourceTypeSchema,
		Kind:         req.NodeSchema.Kind,
		FieldName:    req.SchemaPath.FieldName,
		PropertyName: schema.PropertyInheritFrom,
		Value:        removed,
	})
	return []*validators.GroupedDataPaths{res}, nil
}

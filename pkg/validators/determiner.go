/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"errors"
	"fmt"
	"time"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

// Determiner turns schema changes into constraint validator requests
type Determiner struct {
	registry IConstraintRegistry
}

func NewDeterminer(registry IConstraintRegistry) *Determiner {
	return &Determiner{registry: registry}
}

// Returns one request per changed property which constraint is registered.
//
// New kinds (nil current schema) have no data to check
func (d *Determiner) Requests(current, changed *schema.NodeSchema, branch *graph.Branch, at time.Time) []*SchemaConstraintValidatorRequest {
	if current == nil || changed == nil {
		return nil
	}
	res := []*SchemaConstraintValidatorRequest{}
	for _, p := range schema.Diff(current, changed) {
		name := fmt.Sprintf("%s.%s.%s", p.PathType, p.PropertyName, ActionUpdate)
		if _, ok := d.registry.Get(name); !ok {
			continue
		}
		res = append(res, &SchemaConstraintValidatorRequest{
			NodeSchema:     changed,
			SchemaPath:     p,
			ConstraintName: name,
			Branch:         branch,
			At:             at,
		})
	}
	return res
}

// Returns requests for all changed schemas in the order of changed schemas
func (d *Determiner) RequestsForAll(registry schema.ISchemaRegistry, changed []*schema.NodeSchema, branch *graph.Branch, at time.Time) ([]*SchemaConstraintValidatorRequest, error) {
	res := []*SchemaConstraintValidatorRequest{}
	for _, c := range changed {
		current, err := registry.Get(c.Kind, branch.Name)
		if errors.Is(err, schema.ErrSchemaNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		normalized := c.Clone()
		if err := schema.Normalize(normalized); err != nil {
			return nil, err
		}
		res = append(res, d.Requests(current, normalized, branch, at)...)
	}
	return res, nil
}

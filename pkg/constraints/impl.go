/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func (r *registry) Checkers() []validators.IConstraintChecker {
	return append([]validators.IConstraintChecker(nil), r.checkers...)
}

func (r *registry) Get(constraintName string) (validators.IConstraintChecker, bool) {
	c, ok := r.byName[constraintName]
	return c, ok
}

func (r *registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Binds every constraint name to the first checker which supports it
func newRegistry(checkers []validators.IConstraintChecker) (*registry, error) {
	r := &registry{checkers: checkers, byName: map[string]validators.IConstraintChecker{}}
	for _, name := range ConstraintNames {
		cn, err := schema.ParseConstraintName(name)
		if err != nil {
			return nil, err
		}
		probe := &validators.SchemaConstraintValidatorRequest{
			NodeSchema:     &schema.NodeSchema{},
			SchemaPath:     schema.SchemaPath{PathType: cn.PathType, PropertyName: cn.Property},
			ConstraintName: name,
			Branch:         graph.NewDefaultBranch(),
		}
		idx := slices.IndexFunc(checkers, func(c validators.IConstraintChecker) bool { return c.Supports(probe) })
		if idx < 0 {
			return nil, fmt.Errorf("%w: «%s»", ErrUnsupportedConstraint, name)
		}
		r.byName[name] = checkers[idx]
	}
	r.names = maps.Keys(r.byName)
	slices.Sort(r.names)
	return r, nil
}

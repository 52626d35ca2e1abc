/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

import (
	"github.com/voedger/graphcheck/pkg/schema"
)

// Builds query request for the kind: one group per unique attribute plus uniqueness constraints of the schema.
//
// Returns ErrUnknownSchemaPath wrapped error if constraint refers to unknown field
func BuildQueryRequest(n *schema.NodeSchema, kind string) (QueryRequest, error) {
	res := QueryRequest{Kind: kind}
	seen := map[string]bool{}
	add := func(g ConstraintGroup) {
		if !seen[g.String()] {
			seen[g.String()] = true
			res.Groups = append(res.Groups, g)
		}
	}
	for _, a := range n.UniqueAttributes() {
		add(ConstraintGroup{{Attribute: a, AttributeProperty: schema.PropertyValue}})
	}
	for _, uc := range n.UniquenessConstraints {
		g := make(ConstraintGroup, 0, len(uc))
		for _, path := range uc {
			p, err := schema.ParseAttributePath(n, path)
			if err != nil {
				return QueryRequest{}, err
			}
			g = append(g, p)
		}
		if len(g) > 0 {
			add(g)
		}
	}
	return res, nil
}

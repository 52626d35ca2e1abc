/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

import (
	"strings"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

// Paths which values must be unique together
type ConstraintGroup []schema.AttributePath

func (g ConstraintGroup) String() string {
	ss := make([]string, 0, len(g))
	for _, p := range g {
		ss = append(ss, p.String())
	}
	return strings.Join(ss, ",")
}

// What to query: nodes of the kind and paths of all constraint groups
type QueryRequest struct {
	Kind   string
	Groups []ConstraintGroup
}

// Returns distinct paths of all groups in order of appearance
func (r QueryRequest) Paths() []schema.AttributePath {
	res := []schema.AttributePath{}
	seen := map[string]bool{}
	for _, g := range r.Groups {
		for _, p := range g {
			if !seen[p.String()] {
				seen[p.String()] = true
				res = append(res, p)
			}
		}
	}
	return res
}

// Value of the node attribute which is shared with other nodes
type NonUniqueAttribute struct {
	Path   schema.AttributePath
	Value  any
	Branch string
}

// Value reached over the relationship: peer attribute or peer itself
type NonUniqueRelatedAttribute struct {
	NonUniqueAttribute
	PeerID graph.VertexID
}

// Node with its non unique values
type NonUniqueNode struct {
	ID         graph.VertexID
	Kind       string
	Attributes []NonUniqueAttribute
	Related    []NonUniqueRelatedAttribute
}

// Returns non unique values of the node by the path
func (n *NonUniqueNode) values(path string) []NonUniqueRelatedAttribute {
	res := []NonUniqueRelatedAttribute{}
	for _, a := range n.Attributes {
		if a.Path.String() == path {
			res = append(res, NonUniqueRelatedAttribute{NonUniqueAttribute: a})
		}
	}
	for _, r := range n.Related {
		if r.Path.String() == path {
			res = append(res, r)
		}
	}
	return res
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Non unique nodes in order of appearance
type index struct {
	ids   []graph.VertexID
	nodes map[graph.VertexID]*NonUniqueNode
}

func newIndex() *index {
	return &index{nodes: map[graph.VertexID]*NonUniqueNode{}}
}

func (i *index) node(id graph.VertexID, kind string) *NonUniqueNode {
	n, ok := i.nodes[id]
	if !ok {
		n = &NonUniqueNode{ID: id, Kind: kind}
		i.nodes[id] = n
		i.ids = append(i.ids, id)
	}
	return n
}

// Every combination of the node values, one value per group path
func combinations(n *NonUniqueNode, g ConstraintGroup) [][]NonUniqueRelatedAttribute {
	res := [][]NonUniqueRelatedAttribute{{}}
	for _, p := range g {
		values := n.values(p.String())
		if len(values) == 0 {
			return nil
		}
		next := make([][]NonUniqueRelatedAttribute, 0, len(res)*len(values))
		for _, c := range res {
			for _, v := range values {
				comb := append(append(make([]NonUniqueRelatedAttribute, 0, len(c)+1), c...), v)
				next = append(next, comb)
			}
		}
		res = next
	}
	return res
}

// Returns `{kind}/{path=value/...}`, typed key qualifies values by their types
func groupingKey(kind string, comb []NonUniqueRelatedAttribute) (typed, display string) {
	tb, db := bytebufferpool.Get(), bytebufferpool.Get()
	defer bytebufferpool.Put(tb)
	defer bytebufferpool.Put(db)
	for _, buf := range []*bytebufferpool.ByteBuffer{tb, db} {
		_, _ = buf.WriteString(kind)
	}
	for _, v := range comb {
		for _, buf := range []*bytebufferpool.ByteBuffer{tb, db} {
			_ = buf.WriteByte(keyKindSep)
			_, _ = buf.WriteString(v.Path.String())
			_ = buf.WriteByte(keyValueSep)
		}
		_, _ = tb.WriteString(validators.TypedValueKey(v.Value))
		_, _ = fmt.Fprint(db, v.Value)
	}
	return tb.String(), db.String()
}

type member struct {
	node *NonUniqueNode
	comb []NonUniqueRelatedAttribute
}

// Nodes violate the group if they share values of all group paths
func (i *index) violations(groups []ConstraintGroup) *validators.GroupedDataPaths {
	res := validators.NewGroupedDataPaths()
	names := validators.NewKeyNames()
	for _, g := range groups {
		keys := []string{}
		display := map[string]string{}
		members := map[string][]member{}
		for _, id := range i.ids {
			n := i.nodes[id]
			seen := map[string]bool{}
			for _, comb := range combinations(n, g) {
				k, d := groupingKey(n.Kind, comb)
				if seen[k] {
					continue
				}
				seen[k] = true
				if _, ok := members[k]; !ok {
					keys = append(keys, k)
					display[k] = d
				}
				members[k] = append(members[k], member{node: n, comb: comb})
			}
		}
		for _, k := range keys {
			mm := members[k]
			if len(mm) < 2 {
				continue
			}
			name := names.Name(k, display[k])
			for _, m := range mm {
				for _, v := range m.comb {
					res.Add(name, dataPath(m.node, v))
				}
			}
		}
	}
	return res
}

func dataPath(n *NonUniqueNode, v NonUniqueRelatedAttribute) validators.DataPath {
	p := validators.DataPath{
		Branch:       v.Branch,
		ResourceType: validators.ResourceTypeData,
		NodeID:       n.ID,
		Kind:         n.Kind,
		PeerID:       v.PeerID,
		Value:        v.Value,
	}
	if v.Path.IsRelationship() {
		p.PathType = schema.PathTypeRelationship
		p.FieldName = v.Path.Relationship.Name
		p.PropertyName = v.Path.PeerAttribute
	} else {
		p.PathType = schema.PathTypeAttribute
		p.FieldName = v.Path.Attribute.Name
		p.PropertyName = v.Path.AttributeProperty
	}
	return p
}

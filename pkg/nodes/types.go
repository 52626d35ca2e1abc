/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import (
	"fmt"
	"strings"
	"time"

	"github.com/erni27/imcache"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

type Node struct {
	ID     graph.VertexID
	Kind   string
	Schema *schema.NodeSchema
	Values map[string]any
}

// Renders display label from attributes listed in schema display labels.
//
// Nodes without display labels are rendered as `Kind(ID: id)`
func (n *Node) RenderDisplayLabel() string {
	if n.Schema == nil || len(n.Schema.DisplayLabels) == 0 {
		return fmt.Sprintf("%s(ID: %s)", n.Kind, n.ID)
	}
	parts := make([]string, 0, len(n.Schema.DisplayLabels))
	for _, name := range n.Schema.DisplayLabelAttributes() {
		v, ok := n.Values[name]
		if !ok || v == nil {
			continue
		}
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

type manager struct {
	db      graph.IDatabase
	schemas schema.ISchemaRegistry
	cache   *imcache.Cache[string, *Node]
	ttl     time.Duration
}

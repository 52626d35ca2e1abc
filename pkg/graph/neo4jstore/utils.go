/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package neo4jstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Quotes label or relationship type for Cypher
func quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func getString(record *neo4j.Record, key string) string {
	if v, ok := record.Get(key); ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func propInt(props map[string]any, key string) int {
	switch v := props[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func vertexFromNode(n neo4j.Node) (*graph.Vertex, error) {
	v := &graph.Vertex{
		ID:     graph.VertexID(propString(n.Props, propUUID)),
		Labels: n.Labels,
	}
	if data := propString(n.Props, propProps); data != "" {
		if err := json.Unmarshal([]byte(data), &v.Props); err != nil {
			return nil, fmt.Errorf("vertex «%s» props: %w", v.ID, err)
		}
	}
	return v, nil
}

func edgeFromRelationship(r neo4j.Relationship, from, to string) (*graph.Edge, error) {
	e := &graph.Edge{
		ID:          propString(r.Props, propEdgeID),
		Type:        graph.EdgeType(r.Type),
		From:        graph.VertexID(from),
		To:          graph.VertexID(to),
		Branch:      propString(r.Props, propBranch),
		BranchLevel: propInt(r.Props, propBranchLevel),
		Status:      graph.EdgeStatus(propString(r.Props, propStatus)),
		Hierarchy:   propString(r.Props, propHierarchy),
	}
	var err error
	if e.FromTime, err = time.Parse(timeLayout, propString(r.Props, propFrom)); err != nil {
		return nil, fmt.Errorf("edge «%s» from: %w", e.ID, err)
	}
	if s := propString(r.Props, propTo); s != "" {
		to, err := time.Parse(timeLayout, s)
		if err != nil {
			return nil, fmt.Errorf("edge «%s» to: %w", e.ID, err)
		}
		e.ToTime = &to
	}
	return e, nil
}

func edgeProps(e *graph.Edge) map[string]any {
	props := map[string]any{
		propBranch:      e.Branch,
		propBranchLevel: int64(e.BranchLevel),
		propFrom:        e.FromTime.UTC().Format(timeLayout),
		propTo:          nil,
		propStatus:      string(e.Status),
		propHierarchy:   e.Hierarchy,
	}
	if e.ToTime != nil {
		props[propTo] = e.ToTime.UTC().Format(timeLayout)
	}
	return props
}

func branchProps(b *graph.Branch) map[string]any {
	return map[string]any{
		"level":         int64(b.Level),
		"is_default":    b.IsDefault,
		"origin":        b.Origin,
		"branched_from": b.BranchedFrom.UTC().Format(timeLayout),
	}
}

func branchFromNode(n neo4j.Node) (*graph.Branch, error) {
	b := &graph.Branch{
		Name:   propString(n.Props, "name"),
		Level:  propInt(n.Props, "level"),
		Origin: propString(n.Props, "origin"),
	}
	b.IsDefault, _ = n.Props["is_default"].(bool)
	if s := propString(n.Props, "branched_from"); s != "" {
		t, err := time.Parse(timeLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%v: branched_from: %w", b, err)
		}
		b.BranchedFrom = t
	}
	return b, nil
}

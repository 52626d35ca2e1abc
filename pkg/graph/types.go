/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"fmt"
	"time"
)

type VertexID string

type EdgeType string

type EdgeStatus string

type Direction string

// Vertex is a graph vertex: node, root, attribute, attribute value or relationship
type Vertex struct {
	ID     VertexID       `json:"id"`
	Labels []string       `json:"labels"`
	Props  map[string]any `json:"props,omitempty"`
}

func (v *Vertex) HasLabel(label string) bool {
	for _, l := range v.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Returns true if vertex has any of specified labels
func (v *Vertex) HasAnyLabel(labels map[string]struct{}) bool {
	for _, l := range v.Labels {
		if _, ok := labels[l]; ok {
			return true
		}
	}
	return false
}

func (v *Vertex) Prop(name string) any {
	if v.Props == nil {
		return nil
	}
	return v.Props[name]
}

func (v *Vertex) StringProp(name string) string {
	switch p := v.Prop(name).(type) {
	case nil:
		return ""
	case string:
		return p
	default:
		return fmt.Sprint(p)
	}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("vertex «%s» %v", v.ID, v.Labels)
}

// Edge is a temporal, branch-scoped graph edge.
//
// Edge is valid on Branch from FromTime up to ToTime (open if ToTime is nil).
type Edge struct {
	ID          string     `json:"id"`
	Type        EdgeType   `json:"type"`
	From        VertexID   `json:"from"`
	To          VertexID   `json:"to"`
	Branch      string     `json:"branch"`
	BranchLevel int        `json:"branch_level"`
	FromTime    time.Time  `json:"from_time"`
	ToTime      *time.Time `json:"to_time,omitempty"`
	Status      EdgeStatus `json:"status"`
	Hierarchy   string     `json:"hierarchy,omitempty"`
}

func (e *Edge) IsActive() bool { return e.Status == StatusActive }

// Returns edge end which is not specified vertex
func (e *Edge) Other(id VertexID) VertexID {
	if e.From == id {
		return e.To
	}
	return e.From
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s «%s»->«%s» [%s:%d %s]", e.Type, e.From, e.To, e.Branch, e.BranchLevel, e.Status)
}

// Params are values bound to a filter predicate
type Params map[string]any

// Row is a single result row returned by query execution
type Row map[string]any

func (r Row) Get(name string) any {
	return r[name]
}

func (r Row) String(name string) string {
	switch v := r[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case VertexID:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (r Row) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

func (r Row) Int(name string) int {
	switch v := r[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

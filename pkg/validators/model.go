/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"fmt"
	"time"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

// Request to check existing data against a single changed schema property
type SchemaConstraintValidatorRequest struct {
	// New node schema
	NodeSchema     *schema.NodeSchema
	SchemaPath     schema.SchemaPath
	ConstraintName string
	Branch         *graph.Branch

	// Time to observe data at. Zero means now
	At time.Time
}

func (r *SchemaConstraintValidatorRequest) String() string {
	return fmt.Sprintf("«%s» at «%s» on branch «%s»", r.ConstraintName, r.SchemaPath, r.Branch.Name)
}

func (r *SchemaConstraintValidatorRequest) Validate() error {
	switch {
	case r.NodeSchema == nil:
		return fmt.Errorf("%w: node schema is nil", ErrInvalidRequest)
	case r.Branch == nil:
		return fmt.Errorf("%w: branch is nil", ErrInvalidRequest)
	case r.ConstraintName == "":
		return fmt.Errorf("%w: constraint name is empty", ErrInvalidRequest)
	}
	return nil
}

// Returns the time to observe data at
func (r *SchemaConstraintValidatorRequest) Time() time.Time {
	if r.At.IsZero() {
		return time.Now().UTC()
	}
	return r.At
}

// DataPath locates a single violation in data
type DataPath struct {
	Branch       string          `json:"branch"`
	PathType     schema.PathType `json:"path_type"`
	ResourceType ResourceType    `json:"resource_type"`
	NodeID       graph.VertexID  `json:"node_id,omitempty"`
	Kind         string          `json:"kind"`
	FieldName    string          `json:"field_name,omitempty"`
	PropertyName string          `json:"property_name,omitempty"`
	PeerID       graph.VertexID  `json:"peer_id,omitempty"`
	Value        any             `json:"value,omitempty"`
}

// Default grouping key: the value
func (p DataPath) GroupingKey() string {
	return valueKey(p.Value)
}

func valueKey(v any) string {
	if v == nil {
		return nullGroupingKey
	}
	return fmt.Sprint(v)
}

// Value key qualified by the value type, 1 and "1" give different keys
func TypedValueKey(v any) string {
	if v == nil {
		return nullGroupingKey
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// Maps typed grouping keys to keys reported to user.
//
// Display key is used as is unless it is already taken by another typed key, then the typed key is reported
type KeyNames struct {
	names map[string]string
	taken map[string]bool
}

func NewKeyNames() *KeyNames {
	return &KeyNames{names: map[string]string{}, taken: map[string]bool{}}
}

func (n *KeyNames) Name(typed, display string) string {
	if name, ok := n.names[typed]; ok {
		return name
	}
	name := display
	if n.taken[display] {
		name = typed
	}
	n.taken[name] = true
	n.names[typed] = name
	return name
}

// GroupedDataPaths maps grouping keys to data paths. Keys and paths within a key keep insertion order
type GroupedDataPaths struct {
	keys  []string
	paths map[string][]DataPath
}

func NewGroupedDataPaths() *GroupedDataPaths {
	return &GroupedDataPaths{paths: map[string][]DataPath{}}
}

// Adds path by its default grouping key
func (g *GroupedDataPaths) AddPath(p DataPath) {
	g.Add(p.GroupingKey(), p)
}

func (g *GroupedDataPaths) Add(key string, p DataPath) {
	if _, ok := g.paths[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.paths[key] = append(g.paths[key], p)
}

// Appends all paths of other
func (g *GroupedDataPaths) Merge(other *GroupedDataPaths) {
	for _, k := range other.keys {
		for _, p := range other.paths[k] {
			g.Add(k, p)
		}
	}
}

func (g *GroupedDataPaths) Keys() []string {
	return append([]string(nil), g.keys...)
}

func (g *GroupedDataPaths) Get(key string) []DataPath {
	return g.paths[key]
}

// Returns all paths ordered by key then by insertion
func (g *GroupedDataPaths) All() []DataPath {
	res := make([]DataPath, 0, g.Len())
	for _, k := range g.keys {
		res = append(res, g.paths[k]...)
	}
	return res
}

func (g *GroupedDataPaths) Len() (cnt int) {
	for _, pp := range g.paths {
		cnt += len(pp)
	}
	return cnt
}

func (g *GroupedDataPaths) Empty() bool { return len(g.keys) == 0 }

// SchemaViolation is a violation reported to user
type SchemaViolation struct {
	NodeID           graph.VertexID `json:"node_id"`
	NodeKind         string         `json:"node_kind"`
	DisplayLabel     string         `json:"display_label"`
	FullDisplayLabel string         `json:"full_display_label"`
	Message          string         `json:"message"`
}

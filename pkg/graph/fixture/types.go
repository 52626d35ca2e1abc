/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package fixture

import (
	"time"

	"github.com/voedger/graphcheck/pkg/graph"
)

// File describes graph data and its changes. Entries are applied in section order:
// branches, nodes, relationships, updates, removals, deletions
type File struct {
	// Default time of entries without `at`
	At            time.Time      `yaml:"at"`
	Branches      []Branch       `yaml:"branches,omitempty"`
	Nodes         []Node         `yaml:"nodes,omitempty"`
	Relationships []Relationship `yaml:"relationships,omitempty"`
	Updates       []Update       `yaml:"updates,omitempty"`
	Removals      []Removal      `yaml:"removals,omitempty"`
	Deletions     []Deletion     `yaml:"deletions,omitempty"`
}

type Branch struct {
	Name         string    `yaml:"name"`
	Default      bool      `yaml:"default,omitempty"`
	Origin       string    `yaml:"origin,omitempty"`
	BranchedFrom time.Time `yaml:"branched_from"`
}

type Node struct {
	ID         graph.VertexID `yaml:"id"`
	Kind       string         `yaml:"kind"`
	Labels     []string       `yaml:"labels,omitempty"`
	Branch     string         `yaml:"branch,omitempty"`
	At         time.Time      `yaml:"at,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
}

type Relationship struct {
	// Fixture-local name used by removals
	ID         string          `yaml:"id,omitempty"`
	Node       graph.VertexID  `yaml:"node"`
	Peer       graph.VertexID  `yaml:"peer"`
	Identifier string          `yaml:"identifier"`
	Direction  graph.Direction `yaml:"direction,omitempty"`
	Hierarchy  string          `yaml:"hierarchy,omitempty"`
	Branch     string          `yaml:"branch,omitempty"`
	At         time.Time       `yaml:"at,omitempty"`
}

// Attribute value change
type Update struct {
	Node      graph.VertexID `yaml:"node"`
	Attribute string         `yaml:"attribute"`
	Value     any            `yaml:"value"`
	Branch    string         `yaml:"branch,omitempty"`
	At        time.Time      `yaml:"at,omitempty"`
}

// Relationship removal
type Removal struct {
	Relationship string    `yaml:"relationship"`
	Branch       string    `yaml:"branch,omitempty"`
	At           time.Time `yaml:"at,omitempty"`
}

// Node deletion
type Deletion struct {
	Node   graph.VertexID `yaml:"node"`
	Branch string         `yaml:"branch,omitempty"`
	At     time.Time      `yaml:"at,omitempty"`
}

// Result of applied fixture
type Result struct {
	Nodes         []graph.VertexID
	Relationships map[string]graph.VertexID
}

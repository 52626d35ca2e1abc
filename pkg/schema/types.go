/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"fmt"
	"strings"

	"github.com/voedger/graphcheck/pkg/graph"
)

type Choice struct {
	Name        string `yaml:"name" json:"name"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
}

type AttributeSchema struct {
	Name      string   `yaml:"name" json:"name"`
	Kind      string   `yaml:"kind" json:"kind"`
	Optional  bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
	Unique    bool     `yaml:"unique,omitempty" json:"unique,omitempty"`
	Regex     string   `yaml:"regex,omitempty" json:"regex,omitempty"`
	MinLength *int     `yaml:"min_length,omitempty" json:"min_length,omitempty"`
	MaxLength *int     `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	Enum      []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	Choices   []Choice `yaml:"choices,omitempty" json:"choices,omitempty"`
	Default   any      `yaml:"default_value,omitempty" json:"default_value,omitempty"`
}

func (a *AttributeSchema) ChoiceNames() []string {
	res := make([]string, 0, len(a.Choices))
	for _, c := range a.Choices {
		res = append(res, c.Name)
	}
	return res
}

type RelationshipSchema struct {
	Name        string           `yaml:"name" json:"name"`
	Peer        string           `yaml:"peer" json:"peer"`
	Kind        RelationshipKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Identifier  string           `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Cardinality Cardinality      `yaml:"cardinality,omitempty" json:"cardinality,omitempty"`
	Optional    bool             `yaml:"optional,omitempty" json:"optional,omitempty"`
	MinCount    int              `yaml:"min_count,omitempty" json:"min_count,omitempty"`
	MaxCount    int              `yaml:"max_count,omitempty" json:"max_count,omitempty"`
	Direction   graph.Direction  `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// NodeSchema describes node, generic or profile kind
type NodeSchema struct {
	Kind                  string                `yaml:"kind" json:"kind"`
	Type                  NodeType              `yaml:"type,omitempty" json:"type,omitempty"`
	Description           string                `yaml:"description,omitempty" json:"description,omitempty"`
	InheritFrom           []string              `yaml:"inherit_from,omitempty" json:"inherit_from,omitempty"`
	UsedBy                []string              `yaml:"used_by,omitempty" json:"used_by,omitempty"`
	Attributes            []*AttributeSchema    `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Relationships         []*RelationshipSchema `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	UniquenessConstraints [][]string            `yaml:"uniqueness_constraints,omitempty" json:"uniqueness_constraints,omitempty"`
	DisplayLabels         []string              `yaml:"display_labels,omitempty" json:"display_labels,omitempty"`
	Hierarchy             string                `yaml:"hierarchy,omitempty" json:"hierarchy,omitempty"`
	Parent                string                `yaml:"parent,omitempty" json:"parent,omitempty"`
	Children              string                `yaml:"children,omitempty" json:"children,omitempty"`
	GenerateProfile       *bool                 `yaml:"generate_profile,omitempty" json:"generate_profile,omitempty"`
}

func (n *NodeSchema) String() string {
	return fmt.Sprintf("%s «%s»", n.Type, n.Kind)
}

func (n *NodeSchema) IsGeneric() bool { return n.Type == NodeTypeGeneric }

// Profile generation is enabled by default for nodes
func (n *NodeSchema) ProfileEnabled() bool {
	if n.GenerateProfile == nil {
		return n.Type == NodeTypeNode || n.Type == ""
	}
	return *n.GenerateProfile
}

func (n *NodeSchema) ProfileKind() string {
	return ProfileKindPrefix + n.Kind
}

// Returns labels every node of the kind carries: its kind and inherited generics
func (n *NodeSchema) Labels() []string {
	return append([]string{n.Kind}, n.InheritFrom...)
}

func (n *NodeSchema) Attribute(name string) (*AttributeSchema, error) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%v: %w: «%s»", n, ErrAttributeNotFound, name)
}

func (n *NodeSchema) Relationship(name string) (*RelationshipSchema, error) {
	for _, r := range n.Relationships {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%v: %w: «%s»", n, ErrRelationshipNotFound, name)
}

// Returns unique attributes in declaration order
func (n *NodeSchema) UniqueAttributes() []*AttributeSchema {
	res := []*AttributeSchema{}
	for _, a := range n.Attributes {
		if a.Unique {
			res = append(res, a)
		}
	}
	return res
}

// Returns attribute names which are referenced by display labels
func (n *NodeSchema) DisplayLabelAttributes() []string {
	res := make([]string, 0, len(n.DisplayLabels))
	for _, l := range n.DisplayLabels {
		name, _, _ := strings.Cut(l, PathSeparator)
		res = append(res, name)
	}
	return res
}

func (n *NodeSchema) Clone() *NodeSchema {
	c := *n
	c.InheritFrom = append([]string(nil), n.InheritFrom...)
	c.UsedBy = append([]string(nil), n.UsedBy...)
	c.DisplayLabels = append([]string(nil), n.DisplayLabels...)
	c.Attributes = make([]*AttributeSchema, 0, len(n.Attributes))
	for _, a := range n.Attributes {
		ac := *a
		ac.Enum = append([]any(nil), a.Enum...)
		ac.Choices = append([]Choice(nil), a.Choices...)
		c.Attributes = append(c.Attributes, &ac)
	}
	c.Relationships = make([]*RelationshipSchema, 0, len(n.Relationships))
	for _, r := range n.Relationships {
		rc := *r
		c.Relationships = append(c.Relationships, &rc)
	}
	c.UniquenessConstraints = make([][]string, 0, len(n.UniquenessConstraints))
	for _, uc := range n.UniquenessConstraints {
		c.UniquenessConstraints = append(c.UniquenessConstraints, append([]string(nil), uc...))
	}
	if n.GenerateProfile != nil {
		v := *n.GenerateProfile
		c.GenerateProfile = &v
	}
	return &c
}

// SchemaPath locates a constraint inside the schema
type SchemaPath struct {
	PathType     PathType `json:"path_type"`
	SchemaKind   string   `json:"schema_kind"`
	FieldName    string   `json:"field_name,omitempty"`
	PropertyName string   `json:"property_name,omitempty"`
}

// Returns `kind.field.property`, empty elements are omitted
func (p SchemaPath) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.SchemaKind, p.FieldName, p.PropertyName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// Resolved uniqueness path element.
//
// Either Attribute (node attribute) or Relationship with optional PeerAttribute is set
type AttributePath struct {
	Attribute         *AttributeSchema
	AttributeProperty string
	Relationship      *RelationshipSchema
	PeerAttribute     string
}

func (p AttributePath) IsRelationship() bool { return p.Relationship != nil }

// Returns canonical path string, e.g. `name__value`, `owner__name`
func (p AttributePath) String() string {
	if p.Relationship != nil {
		if p.PeerAttribute == "" {
			return p.Relationship.Name
		}
		return p.Relationship.Name + PathSeparator + p.PeerAttribute
	}
	return p.Attribute.Name + PathSeparator + p.AttributeProperty
}

// Parsed dotted constraint name, e.g. `attribute.regex.update`
type ConstraintName struct {
	PathType PathType
	Property string
	Action   string
}

func (c ConstraintName) String() string {
	return fmt.Sprintf("%s.%s.%s", c.PathType, c.Property, c.Action)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

type NodeType string

const (
	NodeTypeNode    NodeType = "node"
	NodeTypeGeneric NodeType = "generic"
	NodeTypeProfile NodeType = "profile"
)

type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

type RelationshipKind string

const (
	RelationshipKindGeneric   RelationshipKind = "Generic"
	RelationshipKindAttribute RelationshipKind = "Attribute"
	RelationshipKindComponent RelationshipKind = "Component"
	RelationshipKindParent    RelationshipKind = "Parent"
	RelationshipKindHierarchy RelationshipKind = "Hierarchy"
)

type PathType string

const (
	PathTypeNode         PathType = "node"
	PathTypeAttribute    PathType = "attribute"
	PathTypeRelationship PathType = "relationship"
)

// Attribute properties
const (
	PropertyKind      = "kind"
	PropertyRegex     = "regex"
	PropertyEnum      = "enum"
	PropertyMinLength = "min_length"
	PropertyMaxLength = "max_length"
	PropertyUnique    = "unique"
	PropertyOptional  = "optional"
	PropertyChoices   = "choices"
	PropertyValue     = "value"
)

// Relationship properties
const (
	PropertyPeer        = "peer"
	PropertyCardinality = "cardinality"
	PropertyMinCount    = "min_count"
	PropertyMaxCount    = "max_count"
)

// Node properties
const (
	PropertyInheritFrom           = "inherit_from"
	PropertyUniquenessConstraints = "uniqueness_constraints"
	PropertyParent                = "parent"
	PropertyChildren              = "children"
	PropertyGenerateProfile       = "generate_profile"
)

const (
	ProfileKindPrefix = "Profile"

	// Identifier of parent/children relationships of hierarchical nodes
	HierarchyIdentifier = "parent__child"

	RelationshipNameParent   = "parent"
	RelationshipNameChildren = "children"

	// Separator of uniqueness and display label path elements, e.g. `name__value`
	PathSeparator = "__"

	DefaultRegistryCacheSize = 1024
)

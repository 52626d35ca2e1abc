/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

// Vertex labels
const (
	LabelNode           = "Node"
	LabelRoot           = "Root"
	LabelAttribute      = "Attribute"
	LabelAttributeValue = "AttributeValue"
	LabelRelationship   = "Relationship"
)

// Edge types
const (
	EdgeIsPartOf     EdgeType = "IS_PART_OF"
	EdgeHasAttribute EdgeType = "HAS_ATTRIBUTE"
	EdgeHasValue     EdgeType = "HAS_VALUE"
	EdgeIsRelated    EdgeType = "IS_RELATED"
)

// Edge statuses
const (
	StatusActive  EdgeStatus = "active"
	StatusDeleted EdgeStatus = "deleted"
)

// Relationship directions
const (
	DirectionBidirectional Direction = "bidirectional"
	DirectionOutbound      Direction = "outbound"
	DirectionInbound       Direction = "inbound"
)

const (
	DefaultBranch = "main"
	GlobalBranch  = "-global-"

	DefaultBranchLevel = 1
	BranchLevel        = 2
)

// Vertex properties
const (
	PropName  = "name"
	PropValue = "value"
	PropKind  = "kind"
)

// NullValue is stored in AttributeValue vertices for attributes without value
const NullValue = "NULL"

const (
	paramBranchFmt = "branch%d"
	paramTimeFmt   = "time%d"
)

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

// Constraint names
const (
	AttributeRegexUpdate     = "attribute.regex.update"
	AttributeEnumUpdate      = "attribute.enum.update"
	AttributeKindUpdate      = "attribute.kind.update"
	AttributeMinLengthUpdate = "attribute.min_length.update"
	AttributeMaxLengthUpdate = "attribute.max_length.update"
	AttributeUniqueUpdate    = "attribute.unique.update"
	AttributeOptionalUpdate  = "attribute.optional.update"
	AttributeChoicesUpdate   = "attribute.choices.update"

	RelationshipPeerUpdate        = "relationship.peer.update"
	RelationshipCardinalityUpdate = "relationship.cardinality.update"
	RelationshipOptionalUpdate    = "relationship.optional.update"
	RelationshipMinCountUpdate    = "relationship.min_count.update"
	RelationshipMaxCountUpdate    = "relationship.max_count.update"

	NodeInheritFromUpdate           = "node.inherit_from.update"
	NodeUniquenessConstraintsUpdate = "node.uniqueness_constraints.update"
	NodeParentUpdate                = "node.parent.update"
	NodeChildrenUpdate              = "node.children.update"
	NodeGenerateProfileUpdate       = "node.generate_profile.update"
)

const ActionUpdate = "update"

type ResourceType string

const (
	ResourceTypeData   ResourceType = "data"
	ResourceTypeSchema ResourceType = "schema"
)

// Result row columns of constraint queries
const (
	ColNodeID   = "node_id"
	ColKind     = "kind"
	ColBranch   = "branch"
	ColValue    = "value"
	ColPeerID   = "peer_id"
	ColPeerKind = "peer_kind"
	ColCount    = "count"
)

const (
	DefaultRunnerConcurrency = 4
	// Default max concurrent queries of the uniqueness checker
	DefaultUniquenessConcurrency = 5
)

const (
	fallbackLabelFmt     = "Node (%s: %s)"
	fallbackLabelNoIDFmt = "Node (%s)"
	fullDisplayLabelFmt  = "Node %s (%s: %s)"
	violationMessageFmt  = "%s is not compatible with the constraint '%s' at '%s'"
	nullGroupingKey      = "NULL"
	metricsNamespace     = "graphcheck"
	metricsLabelChecker  = "checker"
)

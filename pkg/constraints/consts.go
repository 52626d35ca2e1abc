/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import "github.com/voedger/graphcheck/pkg/validators"

// ConstraintNames lists constraints which have checkers
var ConstraintNames = []string{
	validators.AttributeRegexUpdate,
	validators.AttributeEnumUpdate,
	validators.AttributeKindUpdate,
	validators.AttributeMinLengthUpdate,
	validators.AttributeMaxLengthUpdate,
	validators.AttributeUniqueUpdate,
	validators.AttributeOptionalUpdate,
	validators.AttributeChoicesUpdate,

	validators.RelationshipPeerUpdate,
	validators.RelationshipCardinalityUpdate,
	validators.RelationshipOptionalUpdate,
	validators.RelationshipMinCountUpdate,
	validators.RelationshipMaxCountUpdate,

	validators.NodeInheritFromUpdate,
	validators.NodeUniquenessConstraintsUpdate,
	validators.NodeParentUpdate,
	validators.NodeChildrenUpdate,
	validators.NodeGenerateProfileUpdate,
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var diffOptions = cmp.Options{
	cmpopts.EquateEmpty(),
}

func changed(old, new any) bool {
	return !cmp.Equal(old, new, diffOptions)
}

// Returns paths of node, attribute and relationship properties which differ between the schemas.
//
// Fields added to new schema are reported by properties which may be violated by existing data.
// Removed fields are not reported
func Diff(old, new *NodeSchema) []SchemaPath {
	res := []SchemaPath{}
	nodePath := func(property string) SchemaPath {
		return SchemaPath{PathType: PathTypeNode, SchemaKind: new.Kind, PropertyName: property}
	}

	if changed(old.InheritFrom, new.InheritFrom) {
		res = append(res, nodePath(PropertyInheritFrom))
	}
	if changed(old.UniquenessConstraints, new.UniquenessConstraints) {
		res = append(res, nodePath(PropertyUniquenessConstraints))
	}
	if changed(old.Parent, new.Parent) {
		res = append(res, nodePath(PropertyParent))
	}
	if changed(old.Children, new.Children) {
		res = append(res, nodePath(PropertyChildren))
	}
	if old.ProfileEnabled() != new.ProfileEnabled() {
		res = append(res, nodePath(PropertyGenerateProfile))
	}

	for _, na := range new.Attributes {
		path := func(property string) SchemaPath {
			return SchemaPath{PathType: PathTypeAttribute, SchemaKind: new.Kind, FieldName: na.Name, PropertyName: property}
		}
		oa, err := old.Attribute(na.Name)
		if err != nil {
			oa = &AttributeSchema{Name: na.Name, Kind: na.Kind, Optional: true}
		}
		if changed(oa.Kind, na.Kind) {
			res = append(res, path(PropertyKind))
		}
		if changed(oa.Regex, na.Regex) {
			res = append(res, path(PropertyRegex))
		}
		if changed(oa.Enum, na.Enum) {
			res = append(res, path(PropertyEnum))
		}
		if changed(oa.MinLength, na.MinLength) {
			res = append(res, path(PropertyMinLength))
		}
		if changed(oa.MaxLength, na.MaxLength) {
			res = append(res, path(PropertyMaxLength))
		}
		if changed(oa.Unique, na.Unique) {
			res = append(res, path(PropertyUnique))
		}
		if changed(oa.Optional, na.Optional) {
			res = append(res, path(PropertyOptional))
		}
		if changed(oa.ChoiceNames(), na.ChoiceNames()) {
			res = append(res, path(PropertyChoices))
		}
	}

	for _, nr := range new.Relationships {
		path := func(property string) SchemaPath {
			return SchemaPath{PathType: PathTypeRelationship, SchemaKind: new.Kind, FieldName: nr.Name, PropertyName: property}
		}
		or, err := old.Relationship(nr.Name)
		if err != nil {
			or = &RelationshipSchema{Name: nr.Name, Peer: nr.Peer, Cardinality: CardinalityMany, Optional: true}
		}
		if changed(or.Peer, nr.Peer) {
			res = append(res, path(PropertyPeer))
		}
		if changed(or.Cardinality, nr.Cardinality) {
			res = append(res, path(PropertyCardinality))
		}
		if changed(or.Optional, nr.Optional) {
			res = append(res, path(PropertyOptional))
		}
		if changed(or.MinCount, nr.MinCount) {
			res = append(res, path(PropertyMinCount))
		}
		if changed(or.MaxCount, nr.MaxCount) {
			res = append(res, path(PropertyMaxCount))
		}
	}
	return res
}

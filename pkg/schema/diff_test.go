/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	require := require.New(t)

	old := testDeviceSchema()
	require.Empty(Diff(old, old.Clone()))

	n := old.Clone()
	min := 3
	n.Attributes[1].MinLength = &min
	n.Attributes[1].Regex = "^[A-Z0-9]+$"
	n.Attributes = append(n.Attributes, &AttributeSchema{Name: "role", Kind: "Dropdown", Choices: []Choice{{Name: "edge"}}})
	n.Relationships[0].Optional = true
	n.UniquenessConstraints = [][]string{{"name", "site"}}
	off := false
	n.GenerateProfile = &off

	paths := []string{}
	for _, p := range Diff(old, n) {
		paths = append(paths, string(p.PathType)+":"+p.String())
	}
	require.Equal([]string{
		"node:InfraDevice.uniqueness_constraints",
		"node:InfraDevice.generate_profile",
		"attribute:InfraDevice.serial_number.regex",
		"attribute:InfraDevice.serial_number.min_length",
		"attribute:InfraDevice.role.optional",
		"attribute:InfraDevice.role.choices",
		"relationship:InfraDevice.site.optional",
	}, paths)
}

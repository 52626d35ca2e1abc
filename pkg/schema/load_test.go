/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchemaYAML = `
version: "1.0"
generics:
  - kind: TestGeneric
    attributes:
      - name: name
        kind: Text
nodes:
  - kind: TestChoice
    inherit_from: [TestGeneric]
    display_labels: [name__value]
    attributes:
      - name: name
        kind: Text
        unique: true
      - name: temperature_scale
        kind: Dropdown
        optional: true
        choices:
          - name: celsius
            label: Celsius
          - name: fahrenheit
      - name: code
        kind: Text
        min_length: 2
        max_length: 8
`

func TestLoadFiles(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "schema.yml")
	require.NoError(os.WriteFile(path, []byte(testSchemaYAML), 0600))

	schemas, err := LoadFiles(path)
	require.NoError(err)
	require.Len(schemas, 2)
	require.Equal(NodeTypeGeneric, schemas[0].Type)
	require.Equal(NodeTypeNode, schemas[1].Type)

	ts, err := schemas[1].Attribute("temperature_scale")
	require.NoError(err)
	require.Equal([]string{"celsius", "fahrenheit"}, ts.ChoiceNames())

	code, err := schemas[1].Attribute("code")
	require.NoError(err)
	require.Equal(2, *code.MinLength)
	require.Equal(8, *code.MaxLength)

	r, err := NewRegistry(16)
	require.NoError(err)
	require.NoError(r.Set("main", schemas...))

	_, err = Parse([]byte("nodes:\n  - kind: X\n    unknown_field: 1\n"))
	require.ErrorIs(err, ErrInvalidSchema)

	_, err = LoadFiles(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(err)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require := require.New(t)
	types := Provide()

	tests := []struct {
		kind    string
		valid   []any
		invalid []any
	}{
		{KindText, []any{"", "abc"}, []any{12, true}},
		{KindNumber, []any{1, int64(2), 3.0}, []any{"1", 1.5, false}},
		{KindBoolean, []any{true, false}, []any{"true", 0}},
		{KindDateTime, []any{"2025-01-01T10:00:00Z", "2025-01-01T10:00:00.123+02:00"}, []any{"2025-01-01", 100}},
		{KindEmail, []any{"john@example.com"}, []any{"john", "John <john@example.com>", 1}},
		{KindURL, []any{"https://example.com/x"}, []any{"example.com", "/relative", 5}},
		{KindColor, []any{"#fff", "#A0b1C2"}, []any{"red", "#12345"}},
		{KindIPHost, []any{"10.0.0.1", "10.0.0.1/24", "2001:db8::1"}, []any{"10.0.0.300", "host"}},
		{KindIPNetwork, []any{"10.0.0.0/24", "2001:db8::/32"}, []any{"10.0.0.1/24", "10.0.0.0"}},
		{KindMacAddress, []any{"00:1a:2b:3c:4d:5e"}, []any{"00:1a:2b", 42}},
		{KindList, []any{[]any{1, "a"}}, []any{"a,b"}},
		{KindJSON, []any{`{"a":1}`, map[string]any{"a": 1}, []any{1}}, []any{`{"a":`, func() {}}},
		{KindAny, []any{nil, 1, "x"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			typ, err := types.Get(tt.kind)
			require.NoError(err)
			require.Equal(tt.kind, typ.Kind())
			for _, v := range tt.valid {
				require.NoError(typ.Validate(v, "attr", nil), v)
			}
			for _, v := range tt.invalid {
				require.ErrorIs(typ.Validate(v, "attr", nil), ErrInvalidValue, v)
			}
		})
	}

	_, err := types.Get("Unknown")
	require.ErrorIs(err, ErrUnknownKind)
}

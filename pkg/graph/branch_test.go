/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBranch_QueryFilterPath(t *testing.T) {
	require := require.New(t)
	at := t0.Add(10 * time.Hour)

	t.Run("default branch", func(t *testing.T) {
		fp, err := NewDefaultBranch().QueryFilterPath(at, true)
		require.NoError(err)
		require.Equal(Params{"branch0": []string{"main", "-global-"}, "time0": at}, fp.Params)

		require.True(fp.Match(&Edge{Branch: "main", FromTime: t0}))
		require.True(fp.Match(&Edge{Branch: "-global-", FromTime: t0}))
		require.False(fp.Match(&Edge{Branch: "b1", FromTime: t0}))
		require.False(fp.Match(&Edge{Branch: "main", FromTime: at.Add(time.Second)}))

		closed := at.Add(-time.Second)
		require.False(fp.Match(&Edge{Branch: "main", FromTime: t0, ToTime: &closed}))
		require.True(fp.Match(&Edge{Branch: "main", FromTime: t0, ToTime: &at}))
	})

	b := NewBranch("b1", t0.Add(5*time.Hour))

	t.Run("isolated branch observes origin at branch creation", func(t *testing.T) {
		fp, err := b.QueryFilterPath(at, true)
		require.NoError(err)
		require.Equal(Params{
			"branch0": []string{"b1"},
			"time0":   at,
			"branch1": []string{"main", "-global-"},
			"time1":   t0.Add(5 * time.Hour),
		}, fp.Params)

		require.True(fp.Match(&Edge{Branch: "b1", FromTime: t0.Add(8 * time.Hour)}))
		require.True(fp.Match(&Edge{Branch: "main", FromTime: t0.Add(4 * time.Hour)}))
		require.False(fp.Match(&Edge{Branch: "main", FromTime: t0.Add(6 * time.Hour)}))
	})

	t.Run("not isolated branch observes origin at query time", func(t *testing.T) {
		fp, err := b.QueryFilterPath(at, false)
		require.NoError(err)
		require.Equal(at, fp.Params["time1"])
		require.True(fp.Match(&Edge{Branch: "main", FromTime: t0.Add(6 * time.Hour)}))
	})

	t.Run("query before branch creation", func(t *testing.T) {
		before := t0.Add(time.Hour)
		fp, err := b.QueryFilterPath(before, true)
		require.NoError(err)
		require.Equal(before, fp.Params["time1"])
	})

	t.Run("zero time", func(t *testing.T) {
		_, err := b.QueryFilterPath(time.Time{}, true)
		require.True(errors.Is(err, ErrInvalidBranchFilter))
	})

	t.Run("cypher", func(t *testing.T) {
		fp, err := NewDefaultBranch().QueryFilterPath(at, true)
		require.NoError(err)
		require.Equal("(r.branch IN $branch0 AND r.from <= $time0 AND (r.to IS NULL OR r.to >= $time0))", fp.Cypher("r"))
	})
}

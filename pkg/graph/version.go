/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"sort"
	"time"
)

// Candidate is one version of a logical element: an ordered path of edges which leads to the element.
//
// Candidates with the same Key compete, the winner is selected by SelectCurrent
type Candidate struct {
	Key   string
	Edges []*Edge
}

func (c Candidate) BranchLevelSum() (sum int) {
	for _, e := range c.Edges {
		sum += e.BranchLevel
	}
	return sum
}

// Returns edges from times, most recent first
func (c Candidate) fromTimes() []time.Time {
	res := make([]time.Time, len(c.Edges))
	for i, e := range c.Edges {
		res[i] = e.FromTime
	}
	sort.Slice(res, func(i, j int) bool { return res[i].After(res[j]) })
	return res
}

func (c Candidate) ActiveCount() (cnt int) {
	for _, e := range c.Edges {
		if e.IsActive() {
			cnt++
		}
	}
	return cnt
}

// Candidate is active if all its edges are active
func (c Candidate) Active() bool {
	return len(c.Edges) > 0 && c.ActiveCount() == len(c.Edges)
}

// Returns the edge with the highest branch level. Ties are resolved by the latest from time
func (c Candidate) deepest() (deepest *Edge) {
	for _, e := range c.Edges {
		if deepest == nil || e.BranchLevel > deepest.BranchLevel ||
			(e.BranchLevel == deepest.BranchLevel && e.FromTime.After(deepest.FromTime)) {
			deepest = e
		}
	}
	return deepest
}

func (c Candidate) DeepestBranch() string {
	if e := c.deepest(); e != nil {
		return e.Branch
	}
	return ""
}

func (c Candidate) DeepestBranchLevel() int {
	if e := c.deepest(); e != nil {
		return e.BranchLevel
	}
	return 0
}

// Returns true if a ranks strictly higher than b.
//
// Order is (branch level sum DESC, from_1 DESC, from_2 DESC, active count DESC)
func (c Candidate) outranks(b Candidate) bool {
	if ls, rs := c.BranchLevelSum(), b.BranchLevelSum(); ls != rs {
		return ls > rs
	}
	lt, rt := c.fromTimes(), b.fromTimes()
	for i := 0; i < 2; i++ {
		var l, r time.Time
		if i < len(lt) {
			l = lt[i]
		}
		if i < len(rt) {
			r = rt[i]
		}
		if !l.Equal(r) {
			return l.After(r)
		}
	}
	return c.ActiveCount() > b.ActiveCount()
}

// Selects the current version per key: exactly one candidate per distinct key.
//
// Result keeps the order of first key appearance. Complete ties are resolved in favor of the earlier candidate
func SelectCurrent(candidates []Candidate) []Candidate {
	res := make([]Candidate, 0, len(candidates))
	idx := make(map[string]int, len(candidates))
	for _, c := range candidates {
		i, ok := idx[c.Key]
		if !ok {
			idx[c.Key] = len(res)
			res = append(res, c)
			continue
		}
		if c.outranks(res[i]) {
			res[i] = c
		}
	}
	return res
}

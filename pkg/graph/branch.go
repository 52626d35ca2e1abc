/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"fmt"
	"strings"
	"time"
)

// Branch is a named line of change on top of origin branch
type Branch struct {
	Name         string    `json:"name" yaml:"name"`
	Level        int       `json:"level" yaml:"level"`
	IsDefault    bool      `json:"is_default" yaml:"default"`
	Origin       string    `json:"origin,omitempty" yaml:"origin"`
	BranchedFrom time.Time `json:"branched_from" yaml:"branched_from"`
}

func NewDefaultBranch() *Branch {
	return &Branch{
		Name:      DefaultBranch,
		Level:     DefaultBranchLevel,
		IsDefault: true,
	}
}

func NewBranch(name string, branchedFrom time.Time) *Branch {
	return &Branch{
		Name:         name,
		Level:        BranchLevel,
		Origin:       DefaultBranch,
		BranchedFrom: branchedFrom,
	}
}

func (b *Branch) String() string {
	return fmt.Sprintf("branch «%s»", b.Name)
}

type branchesAt struct {
	branches []string
	at       time.Time
}

// Returns the branch sets visible from branch at the time and the time each set is observed at.
//
// If isolated then origin branch is observed at the branch creation time, otherwise at the same time as the branch.
func (b *Branch) branchesAndTimes(at time.Time, isolated bool) []branchesAt {
	if b.IsDefault {
		return []branchesAt{{branches: []string{b.Name, GlobalBranch}, at: at}}
	}
	origin := b.Origin
	if origin == "" {
		origin = DefaultBranch
	}
	originAt := at
	if isolated && !at.Before(b.BranchedFrom) {
		originAt = b.BranchedFrom
	}
	return []branchesAt{
		{branches: []string{b.Name}, at: at},
		{branches: []string{origin, GlobalBranch}, at: originAt},
	}
}

// Builds edge predicate which selects edges visible from the branch at the time
//
// Returned params are named `branch{i}` (list of branch names) and `time{i}` (time), one pair per branch set
func (b *Branch) QueryFilterPath(at time.Time, isolated bool) (FilterPath, error) {
	if at.IsZero() {
		return FilterPath{}, fmt.Errorf("%v: %w: time is not specified", b, ErrInvalidBranchFilter)
	}
	sets := b.branchesAndTimes(at, isolated)
	fp := FilterPath{
		Params: make(Params, len(sets)*2),
		keys:   make([][2]string, 0, len(sets)),
	}
	for i, s := range sets {
		bk, tk := fmt.Sprintf(paramBranchFmt, i), fmt.Sprintf(paramTimeFmt, i)
		fp.Params[bk] = s.branches
		fp.Params[tk] = s.at
		fp.keys = append(fp.keys, [2]string{bk, tk})
	}
	return fp, nil
}

// FilterPath is a disjunction of (branch IN branch{i} AND from <= time{i} AND (to IS NULL OR to >= time{i})) terms
type FilterPath struct {
	Params Params
	keys   [][2]string
}

// Returns is edge visible through the filter
func (f FilterPath) Match(e *Edge) bool {
	for _, k := range f.keys {
		branches, _ := f.Params[k[0]].([]string)
		at, _ := f.Params[k[1]].(time.Time)
		if !containsBranch(branches, e.Branch) {
			continue
		}
		if e.FromTime.After(at) {
			continue
		}
		if e.ToTime != nil && e.ToTime.Before(at) {
			continue
		}
		return true
	}
	return false
}

// Filters edges through the filter
func (f FilterPath) Apply(edges []*Edge) []*Edge {
	res := make([]*Edge, 0, len(edges))
	for _, e := range edges {
		if f.Match(e) {
			res = append(res, e)
		}
	}
	return res
}

// Renders predicate in Cypher syntax for specified relationship alias, e.g.
//
//	(r.branch IN $branch0 AND r.from <= $time0 AND (r.to IS NULL OR r.to >= $time0))
func (f FilterPath) Cypher(alias string) string {
	terms := make([]string, 0, len(f.keys))
	for _, k := range f.keys {
		terms = append(terms, fmt.Sprintf("(%[1]s.branch IN $%[2]s AND %[1]s.from <= $%[3]s AND (%[1]s.to IS NULL OR %[1]s.to >= $%[3]s))", alias, k[0], k[1]))
	}
	return strings.Join(terms, " OR ")
}

func containsBranch(branches []string, name string) bool {
	for _, b := range branches {
		if b == name {
			return true
		}
	}
	return false
}

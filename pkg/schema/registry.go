/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Registry keeps schemas per branch. Branches without own schema see the default branch schemas
type Registry struct {
	mu       sync.RWMutex
	branches map[string]map[string]*NodeSchema
	resolved *lru.Cache[string, *NodeSchema]
}

func NewRegistry(cacheSize int) (*Registry, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultRegistryCacheSize
	}
	cache, err := lru.New[string, *NodeSchema](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Registry{
		branches: map[string]map[string]*NodeSchema{},
		resolved: cache,
	}, nil
}

// Replaces schemas of the branch. Schemas are normalized, generics `used_by` is rebuilt from `inherit_from`
func (r *Registry) Set(branch string, schemas ...*NodeSchema) error {
	set := make(map[string]*NodeSchema, len(schemas))
	errs := []error{}
	for _, s := range schemas {
		n := s.Clone()
		if err := Normalize(n); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dupe := set[n.Kind]; dupe {
			errs = append(errs, fmt.Errorf("%v: %w: duplicated kind", n, ErrInvalidSchema))
			continue
		}
		set[n.Kind] = n
	}
	for _, n := range set {
		if n.IsGeneric() {
			n.UsedBy = nil
		}
	}
	kinds := maps.Keys(set)
	slices.Sort(kinds)
	for _, kind := range kinds {
		n := set[kind]
		for _, g := range n.InheritFrom {
			generic, ok := set[g]
			if !ok {
				errs = append(errs, fmt.Errorf("%v: %w: inherits from unknown generic «%s»", n, ErrInvalidSchema, g))
				continue
			}
			if !generic.IsGeneric() {
				errs = append(errs, fmt.Errorf("%v: %w: inherits from %v", n, ErrInvalidSchema, generic))
				continue
			}
			generic.UsedBy = append(generic.UsedBy, n.Kind)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.branches[branch] = set
	r.resolved.Purge()
	return nil
}

func (r *Registry) Get(name string, branch string) (*NodeSchema, error) {
	key := branch + "/" + name
	if s, ok := r.resolved.Get(key); ok {
		return s, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range []string{branch, graph.DefaultBranch} {
		set, ok := r.branches[b]
		if !ok {
			continue
		}
		s, ok := set[name]
		if !ok {
			break
		}
		r.resolved.Add(key, s)
		return s, nil
	}
	return nil, fmt.Errorf("%w: «%s» on branch «%s»", ErrSchemaNotFound, name, branch)
}

func (r *Registry) All(branch string) []*NodeSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.branches[branch]
	if !ok {
		set = r.branches[graph.DefaultBranch]
	}
	res := maps.Values(set)
	sort.Slice(res, func(i, j int) bool { return res[i].Kind < res[j].Kind })
	return res
}

// Fills defaults and checks the schema is consistent
func Normalize(n *NodeSchema) error {
	if n.Kind == "" {
		return fmt.Errorf("%w: kind is empty", ErrInvalidSchema)
	}
	if n.Type == "" {
		n.Type = NodeTypeNode
	}
	switch n.Type {
	case NodeTypeNode, NodeTypeGeneric, NodeTypeProfile:
	default:
		return fmt.Errorf("%v: %w: unknown type", n, ErrInvalidSchema)
	}

	if n.Hierarchy != "" {
		parentPeer, childrenPeer := n.Parent, n.Children
		if parentPeer == "" {
			parentPeer = n.Hierarchy
		}
		if childrenPeer == "" {
			childrenPeer = n.Hierarchy
		}
		if _, err := n.Relationship(RelationshipNameParent); err != nil {
			n.Relationships = append(n.Relationships, &RelationshipSchema{
				Name:        RelationshipNameParent,
				Peer:        parentPeer,
				Kind:        RelationshipKindParent,
				Identifier:  HierarchyIdentifier,
				Cardinality: CardinalityOne,
				Optional:    true,
				Direction:   graph.DirectionOutbound,
			})
		}
		if _, err := n.Relationship(RelationshipNameChildren); err != nil {
			n.Relationships = append(n.Relationships, &RelationshipSchema{
				Name:        RelationshipNameChildren,
				Peer:        childrenPeer,
				Kind:        RelationshipKindHierarchy,
				Identifier:  HierarchyIdentifier,
				Cardinality: CardinalityMany,
				Optional:    true,
				Direction:   graph.DirectionInbound,
			})
		}
	}

	names := map[string]bool{}
	for _, a := range n.Attributes {
		if a.Name == "" || a.Kind == "" {
			return fmt.Errorf("%v: %w: attribute name and kind are required", n, ErrInvalidSchema)
		}
		if names[a.Name] {
			return fmt.Errorf("%v: %w: duplicated field «%s»", n, ErrInvalidSchema, a.Name)
		}
		names[a.Name] = true
	}
	for _, rel := range n.Relationships {
		if rel.Name == "" || rel.Peer == "" {
			return fmt.Errorf("%v: %w: relationship name and peer are required", n, ErrInvalidSchema)
		}
		if names[rel.Name] {
			return fmt.Errorf("%v: %w: duplicated field «%s»", n, ErrInvalidSchema, rel.Name)
		}
		names[rel.Name] = true
		if rel.Identifier == "" {
			rel.Identifier = DefaultIdentifier(n.Kind, rel.Peer)
		}
		if rel.Cardinality == "" {
			rel.Cardinality = CardinalityMany
		}
		if rel.Kind == "" {
			rel.Kind = RelationshipKindGeneric
		}
		switch rel.Direction {
		case "":
			rel.Direction = graph.DirectionBidirectional
		case graph.DirectionBidirectional, graph.DirectionOutbound, graph.DirectionInbound:
		default:
			return fmt.Errorf("%v: relationship «%s»: %w: «%s»", n, rel.Name, graph.ErrInvalidDirection, rel.Direction)
		}
	}

	for _, uc := range n.UniquenessConstraints {
		for _, p := range uc {
			if _, err := ParseAttributePath(n, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Returns identifier of relationship between kinds: lowercased kinds sorted and joined with `__`
func DefaultIdentifier(kind, peer string) string {
	ids := []string{strings.ToLower(kind), strings.ToLower(peer)}
	sort.Strings(ids)
	return strings.Join(ids, PathSeparator)
}

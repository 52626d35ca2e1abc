/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package mem

import "github.com/voedger/graphcheck/pkg/graph"

// Store is in-memory graph database
type Store interface {
	graph.IStore
	graph.IDatabase
}

// Provides empty in-memory graph with default branch registered
func Provide() Store {
	return &store{
		vertices: map[graph.VertexID]*graph.Vertex{},
		byLabel:  map[string][]graph.VertexID{},
		edges:    map[string]*graph.Edge{},
		out:      map[graph.VertexID][]string{},
		in:       map[graph.VertexID][]string{},
		branches: map[string]*graph.Branch{graph.DefaultBranch: graph.NewDefaultBranch()},
	}
}

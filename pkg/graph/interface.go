/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import "context"

// Read access to vertices and edges. Edges are returned unfiltered,
// ordered by creation.
//
// @ConcurrentAccess is not required: reader is owned by single session
type IGraphReader interface {
	// Returns ErrVertexNotFound if vertex does not exist
	Vertex(ctx context.Context, id VertexID) (*Vertex, error)

	// Returns vertices with specified label in creation order
	VerticesByLabel(ctx context.Context, label string) ([]*Vertex, error)

	// Edges of specified type which start from vertex
	OutEdges(ctx context.Context, id VertexID, typ EdgeType) ([]*Edge, error)

	// Edges of specified type which end at vertex
	InEdges(ctx context.Context, id VertexID, typ EdgeType) ([]*Edge, error)
}

// Query built against the storage and executed by session
type IQuery interface {
	Name() string
	Run(ctx context.Context, reader IGraphReader) ([]Row, error)
}

// Read-only session. Session must not be shared between concurrently executed queries
type ISession interface {
	IGraphReader
	Execute(ctx context.Context, q IQuery) ([]Row, error)
	Close(ctx context.Context) error
}

type IDatabase interface {
	// Opens new read-only session
	ReadSession(ctx context.Context) (ISession, error)

	// Returns ErrBranchNotFound if branch is unknown
	Branch(ctx context.Context, name string) (*Branch, error)
}

type IGraphWriter interface {
	// Inserts or replaces vertex
	PutVertex(ctx context.Context, v *Vertex) error

	// Inserts or replaces edge by ID
	PutEdge(ctx context.Context, e *Edge) error

	PutBranch(ctx context.Context, b *Branch) error
}

// Store is writable graph which is used by Builder
type IStore interface {
	IGraphReader
	IGraphWriter
	Branch(ctx context.Context, name string) (*Branch, error)
}

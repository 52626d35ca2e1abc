/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import (
	"context"
	"time"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Node manager hydrates nodes for reporting
type IManager interface {
	// Returns nodes by ids as seen on the branch at the time. Unknown ids are omitted.
	//
	// Display label attributes are always hydrated, fields are hydrated in addition.
	// Returns ErrNodeValidation if some node does not match its schema
	GetMany(ctx context.Context, ids []graph.VertexID, branch *graph.Branch, at time.Time, fields []string) (map[graph.VertexID]*Node, error)
}

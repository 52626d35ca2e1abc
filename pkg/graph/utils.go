/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"
)

// Runs query against the reader. Used by session implementations
func ExecuteQuery(ctx context.Context, reader IGraphReader, q IQuery) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := q.Run(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("query «%s» failed: %w", q.Name(), err)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("query «%s»: %d rows in %v", q.Name(), len(rows), time.Since(start)))
	}
	return rows, nil
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package coreutils

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelMap maps every source element with at most `workers` concurrent mappers.
//
// Results keep the source order. On the first mapper error the context passed to
// other mappers is cancelled and the error is returned
func ParallelMap[IN any, OUT any](ctx context.Context, source []IN, workers int, mapper func(context.Context, IN) (OUT, error)) ([]OUT, error) {
	if workers <= 0 {
		workers = 1
	}
	res := make([]OUT, len(source))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range source {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := mapper(gCtx, source[i])
			if err != nil {
				return err
			}
			res[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, ctx.Err()
}

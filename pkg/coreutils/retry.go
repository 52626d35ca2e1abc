/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package coreutils

import (
	"context"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"
)

// Retry calls f until it succeeds, attempts are exhausted or ctx is done.
// Failed attempts are logged, the last error is returned
func Retry(ctx context.Context, attempts int, delay time.Duration, f func() error) (err error) {
	if attempts <= 0 {
		attempts = 1
	}
	for i := 1; ; i++ {
		if err = f(); err == nil {
			return nil
		}
		if i == attempts {
			return err
		}
		logger.Verbose(fmt.Sprintf("attempt %d of %d failed: %v", i, attempts, err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

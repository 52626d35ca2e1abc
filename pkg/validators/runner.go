/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"

	"github.com/voedger/graphcheck/pkg/coreutils"
)

type CheckResult struct {
	Request    *SchemaConstraintValidatorRequest
	Violations []*SchemaViolation
}

// Runner checks many requests concurrently
type Runner struct {
	checker     *AggregatedConstraintChecker
	concurrency int
}

func NewRunner(checker *AggregatedConstraintChecker, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultRunnerConcurrency
	}
	return &Runner{checker: checker, concurrency: concurrency}
}

// Returns results in requests order. First failed request aborts the run
func (r *Runner) Run(ctx context.Context, requests []*SchemaConstraintValidatorRequest) ([]CheckResult, error) {
	return coreutils.ParallelMap(ctx, requests, r.concurrency, func(ctx context.Context, req *SchemaConstraintValidatorRequest) (CheckResult, error) {
		vv, err := r.checker.RunConstraints(ctx, req)
		if err != nil {
			return CheckResult{}, err
		}
		return CheckResult{Request: req, Violations: vv}, nil
	})
}

// Returns total number of violations
func CountViolations(results []CheckResult) (cnt int) {
	for _, r := range results {
		cnt += len(r.Violations)
	}
	return cnt
}

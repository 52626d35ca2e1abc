/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/nodes"
)

// AggregatedConstraintChecker runs all checkers supporting the request and renders violations
type AggregatedConstraintChecker struct {
	registry IConstraintRegistry
	nodes    nodes.IManager
	metrics  *Metrics
}

func NewAggregatedConstraintChecker(registry IConstraintRegistry, nodes nodes.IManager, metrics *Metrics) *AggregatedConstraintChecker {
	return &AggregatedConstraintChecker{registry: registry, nodes: nodes, metrics: metrics}
}

// Returns violations ordered by checker, then by data paths of the checker.
//
// First checker error aborts the run
func (c *AggregatedConstraintChecker) RunConstraints(ctx context.Context, request *SchemaConstraintValidatorRequest) ([]*SchemaViolation, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	req := *request
	req.At = request.Time()

	paths := []DataPath{}
	for _, checker := range c.registry.Checkers() {
		if !checker.Supports(&req) {
			continue
		}
		started := time.Now()
		grouped, err := checker.Check(ctx, &req)
		if err != nil {
			return nil, fmt.Errorf("%w: «%s»: %v: %w", ErrCheckerFailed, checker.Name(), &req, err)
		}
		cnt := 0
		for _, g := range grouped {
			cnt += g.Len()
			paths = append(paths, g.All()...)
		}
		c.metrics.checkDone(checker.Name(), started, cnt)
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("checker «%s»: %d violating paths for %v", checker.Name(), cnt, &req))
		}
	}

	fields := []string{}
	if req.SchemaPath.FieldName != "" {
		fields = append(fields, req.SchemaPath.FieldName)
	}
	labels, err := ResolveLabels(ctx, c.nodes, NodeIDs(paths), req.Branch, req.At, fields, c.metrics)
	if err != nil {
		return nil, err
	}
	violations := BuildViolations(paths, labels)
	RenderMessages(violations, req.ConstraintName, req.SchemaPath.String())
	return violations, nil
}

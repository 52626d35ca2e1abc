/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

import (
	"context"
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/coreutils"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Checks unique attributes and uniqueness constraints of the kind.
//
// Generic schema is checked against every kind which uses it, kinds are queried concurrently
type checker struct {
	db          graph.IDatabase
	concurrency int
}

func (c *checker) Name() string { return validators.NodeUniquenessConstraintsUpdate }

func (c *checker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return req.ConstraintName == validators.NodeUniquenessConstraintsUpdate
}

func (c *checker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	kinds := []string{req.NodeSchema.Kind}
	if req.NodeSchema.IsGeneric() {
		kinds = req.NodeSchema.UsedBy
	}
	requests := make([]QueryRequest, 0, len(kinds))
	for _, kind := range kinds {
		qr, err := BuildQueryRequest(req.NodeSchema, kind)
		if err != nil {
			if errors.Is(err, schema.ErrUnknownSchemaPath) {
				return nil, fmt.Errorf("%v: %w", req, err)
			}
			return nil, err
		}
		if len(qr.Groups) > 0 {
			requests = append(requests, qr)
		}
	}
	if len(requests) == 0 {
		return []*validators.GroupedDataPaths{}, nil
	}
	base, err := validators.NewQueryBase(req)
	if err != nil {
		return nil, err
	}
	return coreutils.ParallelMap(ctx, requests, c.concurrency, func(ctx context.Context, qr QueryRequest) (*validators.GroupedDataPaths, error) {
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("uniqueness of «%s»: %d group(s)", qr.Kind, len(qr.Groups)))
		}
		return validators.RunQuery(ctx, c.db, &uniquenessQuery{QueryBase: base, request: qr})
	})
}

func ProvideChecker(db graph.IDatabase, concurrency int) validators.IConstraintChecker {
	if concurrency <= 0 {
		concurrency = validators.DefaultUniquenessConcurrency
	}
	return &checker{db: db, concurrency: concurrency}
}

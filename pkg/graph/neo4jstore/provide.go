/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package neo4jstore

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/voedger/graphcheck/pkg/coreutils"
	"github.com/voedger/graphcheck/pkg/graph"
)

// Store is Neo4j-backed graph database
type Store interface {
	graph.IStore
	graph.IDatabase
	Close(ctx context.Context) error
}

// Connects to Neo4j and verifies connectivity, server is given a few attempts to come up
func Provide(ctx context.Context, params ParamsType) (Store, error) {
	driver, err := neo4j.NewDriverWithContext(params.URI, neo4j.BasicAuth(params.Username, params.Password, ""))
	if err != nil {
		return nil, err
	}
	err = coreutils.Retry(ctx, connectAttempts, connectRetryDelay, func() error {
		return driver.VerifyConnectivity(ctx)
	})
	if err != nil {
		driver.Close(ctx)
		return nil, err
	}
	s := &store{driver: driver, database: params.Database}
	s.seq.Store(time.Now().UnixNano())
	return s, nil
}

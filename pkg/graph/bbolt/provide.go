/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import (
	"github.com/VictoriaMetrics/fastcache"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/graphcheck/pkg/graph"
)

// Store is bbolt-backed graph database
type Store interface {
	graph.IStore
	graph.IDatabase
	Close() error
}

// Opens (creates if not exists) the database file
func Provide(params ParamsType) (Store, error) {
	db, err := bolt.Open(params.DBPath, dbFileMode, bolt.DefaultOptions)
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, err
	}
	cacheBytes := params.CacheBytes
	if cacheBytes == 0 {
		cacheBytes = DefaultCacheBytes
	}
	return &store{db: db, cache: fastcache.New(cacheBytes)}, nil
}

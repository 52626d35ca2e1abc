/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import (
	"sync/atomic"

	"github.com/VictoriaMetrics/fastcache"
	bolt "go.etcd.io/bbolt"
)

type ParamsType struct {
	// Path to the database file, created if not exists
	DBPath string

	// Max bytes for decoded vertices and edges cache. DefaultCacheBytes if zero
	CacheBytes int
}

type store struct {
	db    *bolt.DB
	cache *fastcache.Cache
}

// reader over a single bolt transaction
type txReader struct {
	tx    *bolt.Tx
	cache *fastcache.Cache
}

type session struct {
	txReader
	closed atomic.Bool
}

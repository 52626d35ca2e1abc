/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import (
	"time"

	"github.com/erni27/imcache"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
)

// Provides node manager. Hydrated nodes are cached for ttl, DefaultCacheTTL is used if ttl is not positive
func Provide(db graph.IDatabase, schemas schema.ISchemaRegistry, ttl time.Duration) IManager {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &manager{
		db:      db,
		schemas: schemas,
		cache: imcache.New[string, *Node](
			imcache.WithDefaultExpirationOption[string, *Node](ttl),
			imcache.WithCleanerOption[string, *Node](ttl),
			imcache.WithMaxEntriesOption[string, *Node](DefaultCacheMaxEntries),
		),
		ttl: ttl,
	}
}

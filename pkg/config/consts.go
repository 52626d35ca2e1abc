/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import "time"

// Storage drivers
const (
	DriverMem   = "mem"
	DriverBbolt = "bbolt"
	DriverNeo4j = "neo4j"
)

const (
	DefaultServerAddr    = ":8080"
	DefaultLogLevel      = "info"
	DefaultBboltPath     = "graphcheck.db"
	DefaultCacheBytes    = 32 * 1024 * 1024
	DefaultNeo4jURI      = "neo4j://localhost:7687"
	DefaultNeo4jDatabase = "neo4j"
	DefaultLabelCacheTTL = 5 * time.Minute
)

var logLevels = []string{"error", "warning", "info", "verbose", "trace"}

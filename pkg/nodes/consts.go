/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import "time"

const (
	DefaultCacheTTL        = 5 * time.Minute
	DefaultCacheMaxEntries = 100000
)

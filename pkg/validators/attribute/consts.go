/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

const (
	// Name of the checker which serves both min_length and max_length updates
	lengthCheckerName = "attribute.length.update"

	DefaultRegexCacheSize = 256
)

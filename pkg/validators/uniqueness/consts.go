/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package uniqueness

// Result column with canonical attribute path
const colPath = "path"

const (
	keyKindSep  = '/'
	keyValueSep = '='
)

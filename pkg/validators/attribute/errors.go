/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import "errors"

var ErrInvalidRegex = errors.New("invalid attribute regex")

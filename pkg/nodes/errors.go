/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package nodes

import "errors"

var ErrNodeValidation = errors.New("node validation failed")

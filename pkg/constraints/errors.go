/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package constraints

import "errors"

var ErrUnsupportedConstraint = errors.New("no checker supports constraint")

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid constraint validator request")
	ErrCheckerFailed  = errors.New("constraint checker failed")
)

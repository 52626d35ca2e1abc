/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package fixture

import "errors"

var (
	ErrInvalidFixture      = errors.New("invalid fixture")
	ErrUnknownRelationship = errors.New("unknown fixture relationship")
)

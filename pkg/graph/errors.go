/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package graph

import "errors"

var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrVertexNotFound      = errors.New("vertex not found")
	ErrInvalidBranchFilter = errors.New("invalid branch filter")
	ErrInvalidDirection    = errors.New("invalid relationship direction")
	ErrSessionClosed       = errors.New("session is closed")
)

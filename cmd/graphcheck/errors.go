/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrViolationsFound = errors.New("schema violations found")
)

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind  = errors.New("unknown attribute kind")
	ErrInvalidValue = errors.New("invalid attribute value")
)

func invalidValue(kind, name string, value any, reason string) error {
	return fmt.Errorf("%w: «%s» (%s): %v %s", ErrInvalidValue, name, kind, value, reason)
}

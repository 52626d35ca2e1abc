/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import "errors"

var ErrInvalidConfig = errors.New("invalid config")

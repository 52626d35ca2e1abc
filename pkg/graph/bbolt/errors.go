/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import "errors"

var ErrBucketNotFound = errors.New("bucket not found")

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package bbolt

import "github.com/voedger/graphcheck/pkg/coreutils"

const (
	verticesBucketName = "vertices"
	labelsBucketName   = "labels"
	edgesBucketName    = "edges"
	outBucketName      = "out"
	inBucketName       = "in"
	branchesBucketName = "branches"
)

const (
	DefaultCacheBytes = 32 * 1024 * 1024

	vertexCachePrefix = "v:"
	edgeCachePrefix   = "e:"

	dbFileMode = coreutils.FileMode_rw_rw_rw_
)

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package neo4jstore

import (
	"sync/atomic"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type ParamsType struct {
	URI      string
	Username string
	Password string
	Database string
}

type store struct {
	driver   neo4j.DriverWithContext
	database string
	seq      atomic.Int64
}

type session struct {
	store  *store
	s      neo4j.SessionWithContext
	closed atomic.Bool
}

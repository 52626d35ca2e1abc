/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import "time"

const appName = "graphcheck"

// HTTP routes
const (
	routeCheck       = "/v1/check"
	routeMigrate     = "/v1/migrate"
	routeConstraints = "/v1/constraints"
	routeMetrics     = "/metrics"
)

const (
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
	readHeaderTimeout   = 10 * time.Second
	shutdownTimeout     = 15 * time.Second
	maxRequestBodyBytes = 16 * 1024 * 1024
)

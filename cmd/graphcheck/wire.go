//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/voedger/graphcheck/pkg/config"
	"github.com/voedger/graphcheck/pkg/validators"
)

func wireApp(ctx context.Context, cfg *config.Config) (*wiredApp, func(), error) {
	panic(
		wire.Build(
			provideStore,
			provideSchemas,
			provideFixtures,
			provideNodes,
			provideConstraints,
			providePrometheus,
			provideMetrics,
			validators.NewAggregatedConstraintChecker,
			provideRunner,
			validators.NewDeterminer,
			provideRegexCache,
			wire.Struct(new(wiredApp), "*"),
		),
	)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/attrtypes"
	"github.com/voedger/graphcheck/pkg/config"
	"github.com/voedger/graphcheck/pkg/constraints"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/graph/bbolt"
	"github.com/voedger/graphcheck/pkg/graph/fixture"
	"github.com/voedger/graphcheck/pkg/graph/mem"
	"github.com/voedger/graphcheck/pkg/graph/neo4jstore"
	"github.com/voedger/graphcheck/pkg/nodes"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
)

func provideStore(ctx context.Context, cfg *config.Config) (graphStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverBbolt:
		s, err := bbolt.Provide(bbolt.ParamsType{
			DBPath:     cfg.Storage.Path,
			CacheBytes: cfg.Storage.CacheBytes,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open «%s»: %w", cfg.Storage.Path, err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Error("failed to close storage:", err)
			}
		}, nil
	case config.DriverNeo4j:
		s, err := neo4jstore.Provide(ctx, neo4jstore.ParamsType{
			URI:      cfg.Storage.Neo4j.URI,
			Username: cfg.Storage.Neo4j.Username,
			Password: cfg.Storage.Neo4j.Password,
			Database: cfg.Storage.Neo4j.Database,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to «%s»: %w", cfg.Storage.Neo4j.URI, err)
		}
		return s, func() {
			if err := s.Close(context.Background()); err != nil {
				logger.Error("failed to close storage:", err)
			}
		}, nil
	}
	return mem.Provide(), func() {}, nil
}

// Schema files of the config become the default branch schemas
func provideSchemas(cfg *config.Config) (*schema.Registry, error) {
	reg, err := schema.NewRegistry(0)
	if err != nil {
		return nil, err
	}
	schemas, err := schema.LoadFiles(cfg.Schema.Files...)
	if err != nil {
		return nil, err
	}
	if err := reg.Set(graph.DefaultBranch, schemas...); err != nil {
		return nil, err
	}
	logger.Verbose(fmt.Sprintf("%d schemas loaded", len(schemas)))
	return reg, nil
}

// Config fixtures are applied to in-memory storage only, persistent storages are filled by `import`
func provideFixtures(ctx context.Context, cfg *config.Config, store graphStore, schemas *schema.Registry) (fixtureResults, error) {
	if cfg.Storage.Driver != config.DriverMem {
		return nil, nil
	}
	return importFixtures(ctx, store, schemas, cfg.Fixtures...)
}

func provideNodes(cfg *config.Config, store graphStore, schemas *schema.Registry) nodes.IManager {
	return nodes.Provide(store, schemas, cfg.Validators.LabelCacheTTL)
}

func provideConstraints(cfg *config.Config, store graphStore, schemas *schema.Registry) (validators.IConstraintRegistry, error) {
	return constraints.Provide(constraints.Deps{
		DB:        store,
		Schemas:   schemas,
		AttrTypes: attrtypes.Provide(),
		Params: constraints.ParamsType{
			RegexCacheSize:        cfg.Validators.RegexCacheSize,
			UniquenessConcurrency: cfg.Validators.UniquenessConcurrency,
		},
	})
}

func providePrometheus() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) (*validators.Metrics, error) {
	return validators.NewMetrics(reg)
}

func provideRunner(cfg *config.Config, checker *validators.AggregatedConstraintChecker) *validators.Runner {
	return validators.NewRunner(checker, cfg.Validators.RunnerConcurrency)
}

func provideRegexCache(cfg *config.Config) *attribute.RegexCache {
	return attribute.NewRegexCache(cfg.Validators.RegexCacheSize)
}

func importFixtures(ctx context.Context, store graph.IStore, schemas schema.ISchemaRegistry, files ...string) (fixtureResults, error) {
	res := fixtureResults{}
	for _, path := range files {
		f, err := fixture.LoadFile(path)
		if err != nil {
			return nil, err
		}
		r, err := fixture.Apply(ctx, store, f, schemas)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		res = append(res, r)
	}
	return res, nil
}

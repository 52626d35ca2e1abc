/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	require := require.New(t)
	c := DefaultConfig()
	require.NoError(c.Validate())
	require.Equal(DriverMem, c.Storage.Driver)
	require.Equal(5, c.Validators.UniquenessConcurrency)
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	c := DefaultConfig()
	c.Storage.Driver = "cassandra"
	c.Validators.RunnerConcurrency = 0
	c.Log.Level = "loud"
	err := c.Validate()
	require.ErrorIs(err, ErrInvalidConfig)
	require.Contains(err.Error(), "storage.driver")
	require.Contains(err.Error(), "runner_concurrency")
	require.Contains(err.Error(), "log.level")

	t.Run("bbolt requires path", func(t *testing.T) {
		c := DefaultConfig()
		c.Storage.Driver = DriverBbolt
		c.Storage.Path = ""
		require.ErrorIs(c.Validate(), ErrInvalidConfig)
	})
}

func TestLoadAndSave(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "graphcheck.yaml")

	require.NoError(os.WriteFile(path, []byte(`
storage:
  driver: bbolt
  path: /tmp/graph.db
schema:
  files: [schema.yaml]
fixtures: [/data/fixture.yaml]
validators:
  uniqueness_concurrency: 3
  label_cache_ttl: 1m
log:
  level: verbose
`), 0600))

	c, err := LoadFromFile(path)
	require.NoError(err)
	require.NoError(c.Validate())
	require.Equal(DriverBbolt, c.Storage.Driver)
	require.Equal([]string{filepath.Join(dir, "schema.yaml")}, c.Schema.Files)
	require.Equal([]string{"/data/fixture.yaml"}, c.Fixtures)
	require.Equal(3, c.Validators.UniquenessConcurrency)
	require.Equal(time.Minute, c.Validators.LabelCacheTTL)
	require.Equal(DefaultServerAddr, c.Server.Addr)

	saved := filepath.Join(dir, "out", "saved.yaml")
	require.NoError(c.SaveToFile(saved))
	again, err := LoadFromFile(saved)
	require.NoError(err)
	require.Equal(c, again)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(err, os.ErrNotExist)
	})
}

func TestMerge(t *testing.T) {
	require := require.New(t)
	c := DefaultConfig()
	c.Merge(nil)
	require.Equal(DefaultConfig(), c)

	c.Merge(&Config{
		Storage:    StorageConfig{Driver: DriverNeo4j, Neo4j: Neo4jConfig{Username: "neo4j"}},
		Validators: ValidatorsConfig{RunnerConcurrency: 8},
		Log:        LogConfig{Level: "trace"},
	})
	require.Equal(DriverNeo4j, c.Storage.Driver)
	require.Equal(DefaultNeo4jURI, c.Storage.Neo4j.URI)
	require.Equal("neo4j", c.Storage.Neo4j.Username)
	require.Equal(8, c.Validators.RunnerConcurrency)
	require.Equal(5, c.Validators.UniquenessConcurrency)
	require.Equal("trace", c.Log.Level)
}

/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/voedger/graphcheck/pkg/coreutils"
	"github.com/voedger/graphcheck/pkg/validators"
	"github.com/voedger/graphcheck/pkg/validators/attribute"
)

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:     DriverMem,
			Path:       DefaultBboltPath,
			CacheBytes: DefaultCacheBytes,
			Neo4j: Neo4jConfig{
				URI:      DefaultNeo4jURI,
				Database: DefaultNeo4jDatabase,
			},
		},
		Validators: ValidatorsConfig{
			UniquenessConcurrency: validators.DefaultUniquenessConcurrency,
			RunnerConcurrency:     validators.DefaultRunnerConcurrency,
			RegexCacheSize:        attribute.DefaultRegexCacheSize,
			LabelCacheTTL:         DefaultLabelCacheTTL,
		},
		Server: ServerConfig{Addr: DefaultServerAddr},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Returns all problems found, joined
func (c *Config) Validate() error {
	errs := []error{}
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
	switch c.Storage.Driver {
	case DriverMem:
	case DriverBbolt:
		if c.Storage.Path == "" {
			invalid("storage.path is required for «%s»", DriverBbolt)
		}
	case DriverNeo4j:
		if c.Storage.Neo4j.URI == "" {
			invalid("storage.neo4j.uri is required for «%s»", DriverNeo4j)
		}
	default:
		invalid("unknown storage.driver «%s»", c.Storage.Driver)
	}
	if c.Storage.CacheBytes < 0 {
		invalid("storage.cache_bytes must not be negative")
	}
	if c.Validators.UniquenessConcurrency <= 0 {
		invalid("validators.uniqueness_concurrency must be positive")
	}
	if c.Validators.RunnerConcurrency <= 0 {
		invalid("validators.runner_concurrency must be positive")
	}
	if c.Validators.RegexCacheSize <= 0 {
		invalid("validators.regex_cache_size must be positive")
	}
	if c.Validators.LabelCacheTTL < 0 {
		invalid("validators.label_cache_ttl must not be negative")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		invalid("unknown log.level «%s»", c.Log.Level)
	}
	return errors.Join(errs...)
}

// Loads config from YAML file on top of defaults. Relative schema and fixture paths are resolved against the file directory
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file «%s»: %w", path, err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file «%s»: %w", path, err)
	}
	dir := filepath.Dir(path)
	resolve := func(files []string) {
		for i, f := range files {
			if !filepath.IsAbs(f) {
				files[i] = filepath.Join(dir, f)
			}
		}
	}
	resolve(c.Schema.Files)
	resolve(c.Fixtures)
	return c, nil
}

func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), coreutils.FileMode_rwxrwxrwx); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, coreutils.FileMode_rw_rw_rw_); err != nil {
		return fmt.Errorf("failed to write config file «%s»: %w", path, err)
	}
	return nil
}

// Merges other into c, non-zero values of other take precedence
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	setString := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	setInt := func(dst *int, src int) {
		if src != 0 {
			*dst = src
		}
	}

	setString(&c.Storage.Driver, other.Storage.Driver)
	setString(&c.Storage.Path, other.Storage.Path)
	setInt(&c.Storage.CacheBytes, other.Storage.CacheBytes)
	setString(&c.Storage.Neo4j.URI, other.Storage.Neo4j.URI)
	setString(&c.Storage.Neo4j.Username, other.Storage.Neo4j.Username)
	setString(&c.Storage.Neo4j.Password, other.Storage.Neo4j.Password)
	setString(&c.Storage.Neo4j.Database, other.Storage.Neo4j.Database)

	if len(other.Schema.Files) > 0 {
		c.Schema.Files = other.Schema.Files
	}
	if len(other.Fixtures) > 0 {
		c.Fixtures = other.Fixtures
	}

	setInt(&c.Validators.UniquenessConcurrency, other.Validators.UniquenessConcurrency)
	setInt(&c.Validators.RunnerConcurrency, other.Validators.RunnerConcurrency)
	setInt(&c.Validators.RegexCacheSize, other.Validators.RegexCacheSize)
	if other.Validators.LabelCacheTTL != 0 {
		c.Validators.LabelCacheTTL = other.Validators.LabelCacheTTL
	}

	setString(&c.Server.Addr, other.Server.Addr)
	setString(&c.Log.Level, other.Log.Level)
}

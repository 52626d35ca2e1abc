/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import "time"

type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Schema     SchemaConfig     `yaml:"schema"`
	Fixtures   []string         `yaml:"fixtures,omitempty"`
	Validators ValidatorsConfig `yaml:"validators"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

type StorageConfig struct {
	// mem, bbolt or neo4j
	Driver     string      `yaml:"driver"`
	Path       string      `yaml:"path,omitempty"`
	CacheBytes int         `yaml:"cache_bytes,omitempty"`
	Neo4j      Neo4jConfig `yaml:"neo4j,omitempty"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Database string `yaml:"database,omitempty"`
}

type SchemaConfig struct {
	Files []string `yaml:"files,omitempty"`
}

type ValidatorsConfig struct {
	UniquenessConcurrency int           `yaml:"uniqueness_concurrency"`
	RunnerConcurrency     int           `yaml:"runner_concurrency"`
	RegexCacheSize        int           `yaml:"regex_cache_size"`
	LabelCacheTTL         time.Duration `yaml:"label_cache_ttl"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

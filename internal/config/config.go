// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// match-point client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the client process itself.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the durable client storage that keeps
	// the access token and the post-login redirect target.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration of the REST API gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client process settings.
type App struct {
	// StartPath is the route opened when the client starts (e.g. "/tournaments").
	// Env: APP_START_PATH
	StartPath string `env:"START_PATH"`

	// LogPath is the file the client logs to. Empty means a file next to the
	// executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for durable client storage.
type Storage struct {
	// DB holds the storage connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB selects the storage backend by DSN:
//   - a file path (e.g. "match-point.db"): SQLite;
//   - "postgres://...": PostgreSQL;
//   - "redis://...": Redis;
//   - "memory": process memory, nothing survives a restart.
type DB struct {
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound REST API gateway.
type Adapter struct {
	// HTTPAddress is the API base URL (e.g. "http://localhost:8001"). A missing
	// scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API call. Zero leaves requests unbounded;
	// a hung request then keeps its page in the loading state.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionCheckInterval is how often the session watcher re-validates the
	// token against GET /users/me. Zero disables the watcher.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Defaults applied after every other source.
const (
	DefaultHTTPAddress = "http://localhost:8001"
	DefaultDSN         = "match-point.db"
	DefaultStartPath   = "/"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{StartPath: DefaultStartPath},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first source that sets a non-zero
// value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

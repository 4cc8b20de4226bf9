// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses client flags from args.
//
// Flags:
//
//	-a API base URL, e.g. http://localhost:8001
//	-d storage DSN (sqlite path, postgres://..., redis://..., memory)
//	-c/-config json file path with configs
//	-request-timeout API request timeout (e.g. "30s")
//	-session-check-interval session watcher interval (e.g. "5m")
//	-start route opened at startup
//	-log log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("match-point", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		apiAddress           string
		dsn                  string
		jsonConfigPath       string
		requestTimeout       time.Duration
		sessionCheckInterval time.Duration
		startPath            string
		logPath              string
	)

	fs.StringVar(&apiAddress, "a", "", "API base URL")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s)")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session watcher interval (e.g., 5m)")
	fs.StringVar(&startPath, "start", "", "Route opened at startup")
	fs.StringVar(&logPath, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StartPath: startPath,
			LogPath:   logPath,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

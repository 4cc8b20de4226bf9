// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional config file.
// Durations may be written as Go duration strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		StartPath string `json:"start_path"`
		LogPath   string `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval"`
	} `json:"workers,omitempty"`
}

func (j *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.App.StartPath = j.App.StartPath
	cfg.App.LogPath = j.App.LogPath
	cfg.Storage.DB.DSN = j.Storage.DB.DSN
	cfg.Adapter.HTTPAddress = j.Adapter.HTTPAddress
	cfg.Adapter.RequestTimeout = time.Duration(j.Adapter.RequestTimeout)
	cfg.Workers.SessionCheckInterval = time.Duration(j.Workers.SessionCheckInterval)
	return cfg
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileCfg StructuredJSONConfig
	if err = json.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	return fileCfg.structured(), nil
}

// Duration is a time.Duration that reads "1m30s" style strings from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if !bytes.HasPrefix(b, []byte(`"`)) {
		return json.Unmarshal(b, (*time.Duration)(d))
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

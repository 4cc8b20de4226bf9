// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order. Earlier
// layers win: mergo only fills fields still zero in the merged result.
type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

// add records one layer, or its error. Errors from every layer are reported
// together by build.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(parseFlags(b.args))
}

// withJSON loads the file named by the last layer that set one. Without a
// path it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}

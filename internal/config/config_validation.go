// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultAdapterTimeout = 10 * time.Second
)

// applyDefaults fills the settings that have a sensible fallback.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.RateLimit < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	switch {
	case dsn == "", dsn == "memory":
		return true
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return true
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return true
	}
	return false
}

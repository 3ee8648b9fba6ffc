// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. It is the first source the
// builder reads, so flags and the JSON file (CONFIG) only fill what it left
// empty.
//
// Recognised keys: APP_VERSION, APP_LOG_LEVEL, STORAGE_DB_DATABASE_URI,
// STORAGE_DB_MIGRATE, SERVER_ADDRESS, SERVER_GRPC_ADDRESS,
// SERVER_REQUEST_TIMEOUT, SERVER_RATE_LIMIT, ADAPTER_ADDRESS,
// ADAPTER_REQUEST_TIMEOUT and CONFIG.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment (%s): %w", envKeysHint, err)
	}

	return nil
}

const envKeysHint = "APP_*, STORAGE_DB_*, SERVER_*, ADAPTER_*, CONFIG"

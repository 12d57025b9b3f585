/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	errInvalidDuration = fmt.Errorf("invalid duration")
	errInvalidConfig   = fmt.Errorf("invalid configuration")
)

// Load reads the service configuration from path and fills defaults for
// anything unset. A missing file is not an error: a fresh install runs
// entirely on defaults. A file that exists but cannot be read or parsed
// is rejected rather than silently ignored.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

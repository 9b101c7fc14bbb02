// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blllock/gridlogic/pkg/logic"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for the gridlogic tool.
type Config struct {
	// Table is the design table used when none is given on the command line.
	Table string `yaml:"table"`
	// Format is the print mode for formulas ("minimal" or "verbose").
	Format string `yaml:"format"`
	// LogLevel is the logrus level name (e.g. "info", "debug").
	LogLevel string `yaml:"log_level"`
	// Colour enables ANSI colours when writing to a terminal.
	Colour *bool `yaml:"colour"`
	// Watch configures the watch command.
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig holds the settings for watching a design table.
type WatchConfig struct {
	// Debounce is how long to wait after a change before reloading.
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	//
	ApplyDefaults(&cfg)
	//
	return &cfg
}

// ApplyDefaults fills in any unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = logic.Minimal.String()
	}
	//
	if cfg.LogLevel == "" {
		cfg.LogLevel = log.InfoLevel.String()
	}
	//
	if cfg.Colour == nil {
		colour := true
		cfg.Colour = &colour
	}
	//
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 100 * time.Millisecond
	}
}

// Load reads a configuration file, applies defaults and environment overrides,
// and validates the result.  Environment variables (GRIDLOGIC_TABLE,
// GRIDLOGIC_FORMAT, GRIDLOGIC_LOG_LEVEL) take precedence over the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	//
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	//
	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	//
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	//
	return &cfg, nil
}

// FromEnv returns the default configuration with any environment overrides
// applied.  This is used when no configuration file is given.
func FromEnv() (*Config, error) {
	cfg := Default()
	applyEnvOverrides(cfg)
	//
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	//
	return cfg, nil
}

// Validate checks that a configuration is usable.
func Validate(cfg *Config) error {
	if _, err := logic.ParseMode(cfg.Format); err != nil {
		return err
	} else if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return err
	} else if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("negative debounce interval %s", cfg.Watch.Debounce)
	}
	//
	return nil
}

// Mode returns the configured print mode.  This assumes the configuration has
// been validated.
func (c *Config) Mode() logic.Mode {
	mode, _ := logic.ParseMode(c.Format)
	return mode
}

// Level returns the configured log level.  This assumes the configuration has
// been validated.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GRIDLOGIC_TABLE"); val != "" {
		cfg.Table = val
	}
	//
	if val := os.Getenv("GRIDLOGIC_FORMAT"); val != "" {
		cfg.Format = strings.ToLower(val)
	}
	//
	if val := os.Getenv("GRIDLOGIC_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
}

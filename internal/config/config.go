/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mikeb26/cobrai-pairings/internal"
)

const (
	EnvBaseURL    = "COBRAI_BASE_URL"
	EnvPathSuffix = "COBRAI_PATH_SUFFIX"
	EnvTimeout    = "COBRAI_TIMEOUT"
)

// Config controls where tournament pages are fetched from.
type Config struct {
	BaseURL    string   `toml:"base_url"`
	PathSuffix string   `toml:"path_suffix"`
	Timeout    Duration `toml:"timeout"`
}

// Duration wraps time.Duration so it can be written as "30s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration for the live cobr.ai site. A zero
// Timeout leaves the http client default in place.
func Default() Config {
	return Config{
		BaseURL:    internal.DefaultBaseURL,
		PathSuffix: internal.DefaultPathSuffix,
	}
}

// Load starts from Default, applies the TOML file at path (if path is
// non-empty) and then any COBRAI_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config.load: decoding %v: %w", path, err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvPathSuffix); ok {
		cfg.PathSuffix = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.load: invalid %v %q: %w",
				EnvTimeout, v, err)
		}
		cfg.Timeout = Duration{d}
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("config: base_url must not be empty")
	}
	if cfg.Timeout.Duration < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}

	return nil
}

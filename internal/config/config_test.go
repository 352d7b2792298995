/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvBaseURL, EnvPathSuffix, EnvTimeout} {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://cobr.ai/tournaments", cfg.BaseURL)
	assert.Equal(t, "/rounds", cfg.PathSuffix)
	assert.Zero(t, cfg.Timeout.Duration)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "cobrai.toml")
	body := `base_url = "http://localhost:8080/t"
timeout = "15s"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/t", cfg.BaseURL)
	// unset keys keep their defaults
	assert.Equal(t, "/rounds", cfg.PathSuffix)
	assert.Equal(t, 15*time.Second, cfg.Timeout.Duration)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "http://127.0.0.1:9999")
	t.Setenv(EnvPathSuffix, "")
	t.Setenv(EnvTimeout, "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL)
	assert.Equal(t, "", cfg.PathSuffix)
	assert.Equal(t, 2*time.Second, cfg.Timeout.Duration)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "missing file", file: filepath.Join(t.TempDir(), "nope.toml")},
		{name: "bad timeout", env: map[string]string{EnvTimeout: "soon"}},
		{name: "negative timeout", env: map[string]string{EnvTimeout: "-1s"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			_, err := Load(c.file)
			assert.Error(t, err)
		})
	}
}

func TestValidateEmptyBaseURL(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "  "
	assert.Error(t, cfg.Validate())
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points CORONACTL_CFG at a testdata file and resets the
// package-level Config so the next call reloads.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("CORONACTL_CFG", absPath)
	Config = Type{}

	t.Cleanup(func() {
		Config = Type{}
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "https://api.corona-zahlen.org", cfg.Data["host"])
				assert.Equal(t, 2, cfg.Data["padding"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				cache, ok := cfg.Data["cache"].(map[string]interface{})
				assert.True(t, ok, "cache should be a map")
				assert.Equal(t, 12, cache["ttl"])
				assert.Equal(t, "/tmp/coronactl-cache.json", cache["file"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("CORONACTL_CFG", "/nonexistent/path/coronactl.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgIsDirectory(t *testing.T) {
	t.Setenv("CORONACTL_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetString("cache.file")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/coronactl-cache.json", got)

	got, err = GetString("missing.key", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = GetString("missing.key")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetInt("cache.ttl")
	assert.NoError(t, err)
	assert.Equal(t, 12, got)

	got, err = GetInt("missing.key", 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestNamespacedLookup(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	cfg, err := Load("status")
	require.NoError(t, err)

	// Namespaced key wins over the bare path when present.
	val, err := cfg.get("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", val)
}

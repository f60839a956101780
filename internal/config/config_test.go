// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets FEEDPASS_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("FEEDPASS_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
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
				assert.Equal(t, "en", cfg.Data["preset"])
				assert.Equal(t, "wordlist.json", cfg.Data["cache"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				gen, ok := cfg.Data["gen"].(map[string]interface{})
				assert.True(t, ok, "gen should be a map")
				assert.Equal(t, "wwsi", gen["pattern"])
				assert.Equal(t, 3, gen["count"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "feedpass", cfg.Data["name"])
				assert.Equal(t, 4, cfg.Data["min"])
				assert.Equal(t, true, cfg.Data["verbose"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
				sets, ok := cfg.Data["sets"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, sets, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv("FEEDPASS_CFG", "/nonexistent/feedpass.yaml")
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Data["preset"])
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("FEEDPASS_CFG", "/nonexistent/path/feedpass.yaml")
	Config = Type{}

	_, err := Load()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_NoStandardLocation(t *testing.T) {
	empty := t.TempDir()
	t.Setenv("FEEDPASS_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", empty)
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", empty)
	Config = Type{}

	_, err := Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_StandardLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("preset: de\n"), 0o600))
	t.Setenv("FEEDPASS_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
	assert.Equal(t, "de", cfg.Data["preset"])
}

func TestLoad_CfgIsDirectory(t *testing.T) {
	t.Setenv("FEEDPASS_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "preset",
			want:     "en",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "fetch.preset",
			want:     "de",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "min",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "min",
			want:     4,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "timeout",
			want:     30,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "fetch.redirects",
			want:     1,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "preset",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	cleanup := setupTestConfig(t, "sets.yaml")
	defer cleanup()

	got, err := GetStringSlice("gen.strong")
	assert.NoError(t, err)
	assert.Equal(t, []string{"--pattern wswswi --count 3"}, got)

	got, err = GetStringSlice("gen.long")
	assert.NoError(t, err)
	assert.Equal(t, []string{"--pattern wwwi", "--min 6"}, got)

	_, err = GetStringSlice("gen.broken")
	assert.Error(t, err)

	_, err = GetStringSlice("gen.missing")
	assert.Error(t, err)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	// Namespaced value wins over the global one.
	Config.Namespace = "gen"
	val, err := Config.get("pattern")
	assert.NoError(t, err)
	assert.Equal(t, "wwsi", val)

	// Falls back to the global value.
	val, err = Config.get("preset")
	assert.NoError(t, err)
	assert.Equal(t, "en", val)

	Config.Namespace = "fetch"
	val, err = Config.get("preset")
	assert.NoError(t, err)
	assert.Equal(t, "de", val)

	val, err = Config.get("pattern")
	assert.NoError(t, err)
	assert.Equal(t, "wisw", val)
}

func TestConfig_LazyLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	// GetString loads on first use.
	val, err := GetString("preset")
	assert.NoError(t, err)
	assert.Equal(t, "en", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}

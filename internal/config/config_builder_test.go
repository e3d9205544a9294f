// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, an empty configs slice and keeps the given args.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder([]string{"-a", ":8000"})
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Equal(t, []string{"-a", ":8000"}, b.args)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults and flags the development sign key.
func TestBuild_EmptyBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Name: "agro"}}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenSignKey, cfg.App.TokenSignKey)
	assert.True(t, cfg.UsesDefaultTokenSignKey())
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, time.Hour, cfg.Storage.DB.PoolRecycle)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs override earlier ones while zero fields do not.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "1.0.0", TokenSignKey: "from-env"},
			Storage: Storage{DB: DB{Driver: DriverSQLite}},
		},
		&StructuredConfig{App: App{TokenSignKey: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "from-flags", cfg.App.TokenSignKey)
	assert.False(t, cfg.UsesDefaultTokenSignKey())
}

// TestBuild_ValidationError verifies that an invalid merged config is rejected.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Driver: "oracle"}}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "9.9.9"})

	b := newConfigBuilder(nil).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "9.9.9", b.configs[0].App.Version)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "later"})

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-driver", "sqlite3"}).withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite3", b.configs[0].Storage.DB.Driver)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-a", "nowhere"}).withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "3.1.0"},
	})
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "3.1.0", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the path from the last source
// (flags over env) is used.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── end to end ────────────────────────────────────────────────────────────────

// TestBuilder_FullChain verifies env < flags < JSON precedence.
func TestBuilder_FullChain(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "7s"},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":     "env-key",
		"SERVER_REQUEST_TIMEOUT": "3s",
		"STORAGE_DB_DRIVER":      "sqlite3",
		"CONFIG":                 path,
	})

	cfg, err := newConfigBuilder([]string{"-token-sign-key", "flag-key"}).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultSQLiteDSN, cfg.Storage.DB.DSN)
}

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-stager/models"
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

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
}

// ── merge / build ─────────────────────────────────────────────────────────────

// TestMerge_EmptyBuilder verifies that merging with no configs returns a
// zero-value StructuredConfig.
func TestMerge_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestMerge_LaterSourceOverrides verifies that a later non-zero field wins
// and zero fields never erase earlier values.
func TestMerge_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Staging: Staging{Limit: 3, Accept: "image/*"}},
		&StructuredConfig{Staging: Staging{Limit: 5}},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 5, cfg.Staging.Limit)
	assert.Equal(t, "image/*", cfg.Staging.Accept)
}

// TestMerge_DefaultsFillOnlyGaps verifies that defaults never override a
// configured value.
func TestMerge_DefaultsFillOnlyGaps(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
	})

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultSessionTTL, cfg.Workers.SessionTTL)
}

func TestMerge_DescriptorsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Defaults: Descriptors{{Name: "a.png"}}},
		&StructuredConfig{Defaults: Descriptors{{Name: "b.png", URL: "https://x/b.png"}}},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, Descriptors{{Name: "b.png", URL: "https://x/b.png"}}, cfg.Defaults)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STAGING_LIMIT", "2")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 2, b.configs[0].Staging.Limit)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("STAGING_LIMIT", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-l", "4", "-accept", ".pdf"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 4, b.configs[0].Staging.Limit)
	assert.Equal(t, ".pdf", b.configs[0].Staging.Accept)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":      map[string]any{"version": "json-version"},
		"staging":  map[string]any{"limit": 1},
		"defaults": []models.FileDescriptor{{Name: "a.png", URL: "https://x/a.png"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 1, b.configs[1].Staging.Limit)
	assert.Equal(t, Descriptors{{Name: "a.png", URL: "https://x/a.png"}}, b.configs[1].Defaults)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs carry a JSON
// path, the last one is used.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_JSONOverridesFlagsOverridesEnv verifies the documented source
// priority end to end.
func TestChain_JSONOverridesFlagsOverridesEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"session_ttl": "2m"},
	})
	t.Setenv("STAGING_LIMIT", "1")
	t.Setenv("WORKERS_SESSION_TTL", "1m")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-l", "3", "-c", path}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Staging.Limit)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SessionTTL)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSweepInterval, cfg.Workers.SweepInterval)
}

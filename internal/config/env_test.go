// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STAGING_LIMIT":             "2",
		"STAGING_ACCEPT":            "image/*,.pdf",
		"STAGING_MULTIPLE":          "true",
		"STAGING_DRAG":              "true",
		"STAGING_MAX_FILE_SIZE":     "1048576",
		"STAGING_REJECTION_MESSAGE": "nope",
		"STAGING_DEFAULTS":          "a.png=https://cdn.example.com/a.png, notes.pdf",

		"FETCHER_TIMEOUT":              "5s",
		"FETCHER_USER_AGENT":           "stager-test",
		"FETCHER_MAX_BYTES":            "2048",
		"FETCHER_LOCAL_ROOT":           "/srv/defaults",
		"FETCHER_S3_REGION":            "eu-central-1",
		"FETCHER_S3_ENDPOINT":          "http://localhost:9000",
		"FETCHER_S3_ACCESS_KEY_ID":     "key",
		"FETCHER_S3_SECRET_ACCESS_KEY": "secret",
		"FETCHER_S3_USE_PATH_STYLE":    "true",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_UPLOAD_SIZE": "4096",
		"WORKERS_SESSION_TTL":    "10m",
		"WORKERS_SWEEP_INTERVAL": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, Staging{
		Limit:            2,
		Accept:           "image/*,.pdf",
		Multiple:         true,
		Drag:             true,
		MaxFileSize:      1 << 20,
		RejectionMessage: "nope",
	}, cfg.Staging)
	assert.Equal(t, Descriptors{
		{Name: "a.png", URL: "https://cdn.example.com/a.png"},
		{Name: "notes.pdf"},
	}, cfg.Defaults)

	assert.Equal(t, 5*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, "stager-test", cfg.Fetcher.UserAgent)
	assert.Equal(t, int64(2048), cfg.Fetcher.MaxBytes)
	assert.Equal(t, "/srv/defaults", cfg.Fetcher.LocalRoot)
	assert.Equal(t, S3{
		Region:          "eu-central-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	}, cfg.Fetcher.S3)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxUploadSize)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.Workers.SweepInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"FETCHER_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_DescriptorWithoutName(t *testing.T) {
	setEnvVars(t, map[string]string{"STAGING_DEFAULTS": "=https://x/a.png"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestDescriptors_TextRoundTrip(t *testing.T) {
	in := Descriptors{
		{Name: "a.png", URL: "https://x/a.png"},
		{Name: "b.txt"},
	}

	text, err := in.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "a.png=https://x/a.png,b.txt", string(text))

	var out Descriptors
	require.NoError(t, out.UnmarshalText(text))
	assert.Equal(t, in, out)
	assert.IsType(t, []models.FileDescriptor{}, []models.FileDescriptor(out))
}

func TestDescriptors_UnmarshalEmpty(t *testing.T) {
	out := Descriptors{{Name: "stale"}}
	require.NoError(t, out.UnmarshalText([]byte("  ")))
	assert.Nil(t, out)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads; empty values are
// treated as unset by the env parser.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"STAGING_LIMIT", "STAGING_ACCEPT", "STAGING_MULTIPLE", "STAGING_DRAG",
		"STAGING_MAX_FILE_SIZE", "STAGING_REJECTION_MESSAGE", "STAGING_DEFAULTS",
		"FETCHER_TIMEOUT", "FETCHER_USER_AGENT", "FETCHER_MAX_BYTES", "FETCHER_LOCAL_ROOT",
		"FETCHER_S3_REGION", "FETCHER_S3_ENDPOINT", "FETCHER_S3_ACCESS_KEY_ID",
		"FETCHER_S3_SECRET_ACCESS_KEY", "FETCHER_S3_USE_PATH_STYLE",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_UPLOAD_SIZE",
		"WORKERS_SESSION_TTL", "WORKERS_SWEEP_INTERVAL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// upload stager. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Staging holds the default upload policy applied to every new buffer.
	Staging Staging `envPrefix:"STAGING_"`

	// Fetcher holds settings for the remote resource fetchers used to
	// hydrate default descriptors.
	Fetcher Fetcher `envPrefix:"FETCHER_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Defaults is the list of descriptors every new buffer is seeded with
	// when the creating request does not bring its own.
	// Env: STAGING_DEFAULTS as "name=url,name=url".
	Defaults Descriptors `env:"STAGING_DEFAULTS"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Staging is the default upload policy.
type Staging struct {
	// Limit is the maximum number of staged files; 0 means unlimited.
	// Env: STAGING_LIMIT
	Limit int `env:"LIMIT"`

	// Accept is an HTML accept-style filter (e.g. "image/*,.pdf").
	// Env: STAGING_ACCEPT
	Accept string `env:"ACCEPT"`

	// Multiple lets the picker select more than one file at once.
	// Env: STAGING_MULTIPLE
	Multiple bool `env:"MULTIPLE"`

	// Drag enables the drag-and-drop state machine.
	// Env: STAGING_DRAG
	Drag bool `env:"DRAG"`

	// MaxFileSize rejects files larger than this many bytes; 0 disables the check.
	// Env: STAGING_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// RejectionMessage replaces the generic toast shown when validation
	// fails without a message of its own.
	// Env: STAGING_REJECTION_MESSAGE
	RejectionMessage string `env:"REJECTION_MESSAGE"`
}

// Fetcher configures how default descriptors are resolved to bytes.
type Fetcher struct {
	// Timeout bounds a single fetch.
	// Env: FETCHER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// UserAgent is sent with every HTTP fetch.
	// Env: FETCHER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// MaxBytes caps the size of a fetched payload; 0 means no cap.
	// Env: FETCHER_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// LocalRoot is the directory file:// URLs are confined to. Empty
	// disables the file scheme.
	// Env: FETCHER_LOCAL_ROOT
	LocalRoot string `env:"LOCAL_ROOT"`

	// S3 holds object storage settings for s3:// URLs.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds the connection settings for an S3-compatible object store.
// An empty Region disables the s3 scheme.
type S3 struct {
	// Env: FETCHER_S3_REGION
	Region string `env:"REGION"`
	// Endpoint overrides the AWS endpoint (MinIO, LocalStack).
	// Env: FETCHER_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: FETCHER_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: FETCHER_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// UsePathStyle forces bucket-in-path addressing.
	// Env: FETCHER_S3_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the multipart body of a single upload request.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionTTL is how long a staging session may stay idle before the
	// janitor tears it down.
	// Env: WORKERS_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SweepInterval is how often the janitor looks for idle sessions.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled from [Default].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagArgs()).
		withJSON().
		withDefaults().
		build()
}

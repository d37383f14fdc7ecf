// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values used for every field the sources leave unset.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxUploadSize    = 32 << 20
	DefaultFetchTimeout     = 10 * time.Second
	DefaultFetchMaxBytes    = 64 << 20
	DefaultUserAgent        = "go-upload-stager"
	DefaultSessionTTL       = 30 * time.Minute
	DefaultSweepInterval    = time.Minute
	DefaultRejectionMessage = "file was rejected"
)

// Default returns the configuration the stager runs with when nothing is
// configured.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Staging: Staging{
			RejectionMessage: DefaultRejectionMessage,
		},
		Fetcher: Fetcher{
			Timeout:   DefaultFetchTimeout,
			UserAgent: DefaultUserAgent,
			MaxBytes:  DefaultFetchMaxBytes,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
		},
		Workers: Workers{
			SessionTTL:    DefaultSessionTTL,
			SweepInterval: DefaultSweepInterval,
		},
	}
}

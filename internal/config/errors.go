package config

import "errors"

// Validation errors returned by validate when a configuration group is
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty address or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStagingConfigs indicates an invalid default policy
	// (for example, a negative limit or a malformed defaults list).
	ErrInvalidStagingConfigs = errors.New("invalid staging configuration")
	// ErrInvalidFetcherConfigs indicates invalid fetcher settings
	// (for example, S3 credentials given without a region).
	ErrInvalidFetcherConfigs = errors.New("invalid fetcher configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

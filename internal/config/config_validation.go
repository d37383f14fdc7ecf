// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %v", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionTTL <= 0 || cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if err := cfg.Staging.validate(); err != nil {
		return err
	}

	return cfg.Fetcher.validate()
}

func (s Staging) validate() error {
	if s.Limit < 0 || s.MaxFileSize < 0 {
		return ErrInvalidStagingConfigs
	}
	return nil
}

func (f Fetcher) validate() error {
	if f.Timeout <= 0 || f.MaxBytes < 0 {
		return ErrInvalidFetcherConfigs
	}
	if f.S3.Region == "" && (f.S3.AccessKeyID != "" || f.S3.Endpoint != "") {
		return fmt.Errorf("%w: s3 settings given without a region", ErrInvalidFetcherConfigs)
	}
	if (f.S3.AccessKeyID == "") != (f.S3.SecretAccessKey == "") {
		return fmt.Errorf("%w: s3 access key and secret must be set together", ErrInvalidFetcherConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Staging.validate(); err != nil {
		return err
	}
	return cfg.Fetcher.validate()
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "bad address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "8080" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SweepInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Staging.Limit = -1 },
			wantErr: ErrInvalidStagingConfigs,
		},
		{
			name:    "zero fetch timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Fetcher.Timeout = 0 },
			wantErr: ErrInvalidFetcherConfigs,
		},
		{
			name:    "s3 endpoint without region",
			mutate:  func(cfg *StructuredConfig) { cfg.Fetcher.S3.Endpoint = "http://minio:9000" },
			wantErr: ErrInvalidFetcherConfigs,
		},
		{
			name: "s3 key without secret",
			mutate: func(cfg *StructuredConfig) {
				cfg.Fetcher.S3.Region = "us-east-1"
				cfg.Fetcher.S3.AccessKeyID = "key"
			},
			wantErr: ErrInvalidFetcherConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := Default()
	cfg.Staging.Limit = 1
	cfg.Fetcher.LocalRoot = "/home/user"
	cfg.Defaults = Descriptors{{Name: "avatar.png"}}
	// server settings are irrelevant to the client
	cfg.Server = Server{}

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, clientCfg.Staging.Limit)
	assert.Equal(t, "/home/user", clientCfg.StartDir)
	assert.Equal(t, DefaultFetchTimeout, clientCfg.Fetcher.Timeout)
	assert.Equal(t, Descriptors{{Name: "avatar.png"}}, clientCfg.Defaults)
}

func TestNewClientConfig_InvalidFetcher(t *testing.T) {
	cfg := Default()
	cfg.Fetcher.Timeout = -time.Second

	_, err := newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidFetcherConfigs)
}

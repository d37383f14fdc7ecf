package config

import (
	"fmt"
)

// ClientConfig is the configuration of the terminal stager, assembled from
// [StructuredConfig]. The client hosts a single buffer, so it needs only the
// policy, the fetchers and the default descriptors.
type ClientConfig struct {
	// Staging is the policy of the hosted buffer.
	Staging Staging
	// Fetcher configures how defaults are hydrated.
	Fetcher Fetcher
	// Defaults seed the buffer on start.
	Defaults Descriptors
	// StartDir is the directory the file picker opens in.
	StartDir string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server and worker settings are not required by the client, so they are
// not validated here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(flagArgs()).
		withJSON().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Staging:  cfg.Staging,
		Fetcher:  cfg.Fetcher,
		Defaults: cfg.Defaults,
		StartDir: cfg.Fetcher.LocalRoot,
	}

	return clientCfg, clientCfg.validate()
}

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by the stub identity provider.
type ServerConfig struct {
	// Address is the TCP address the provider listens on.
	Address string
	// DatabaseDSN is the SQLite file backing the account store.
	DatabaseDSN string
	// TokenSecret signs issued bearer tokens.
	TokenSecret string
	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration
}

// GetServerConfig builds and validates a provider-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:     cfg.Server.Address,
		DatabaseDSN: cfg.Storage.DSN,
		TokenSecret: cfg.Server.TokenSecret,
		TokenTTL:    cfg.Server.TokenTTL,
	}

	return serverCfg, serverCfg.validate()
}

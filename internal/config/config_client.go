package config

import (
	"fmt"
	"time"
)

// ClientProvider holds network settings used by the client transport layer.
type ClientProvider struct {
	// BaseURL is the identity provider endpoint the client talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound provider requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the readiness prober runs until the
	// first success.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Provider contains the client transport address and timeout.
	Provider ClientProvider
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Provider: ClientProvider{
			BaseURL:        cfg.Provider.BaseURL,
			RequestTimeout: cfg.Provider.RequestTimeout,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}

	return clientCfg, clientCfg.validate()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package config

import "time"

// StructuredConfig is the top-level configuration container for signon. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Provider holds settings for the outbound identity-provider transport
	// used by the client.
	Provider Provider `envPrefix:"SIGNON_PROVIDER_"`

	// Server holds settings for the stub identity provider process.
	Server Server `envPrefix:"SIGNON_SERVER_"`

	// Storage holds the stub provider's database settings.
	Storage Storage `envPrefix:"SIGNON_STORAGE_"`

	// Workers holds background worker settings for the client.
	Workers Workers `envPrefix:"SIGNON_WORKERS_"`
}

// Provider holds network settings for the client's provider transport.
type Provider struct {
	// BaseURL is the identity provider endpoint the client talks to
	// (e.g. "http://localhost:8080").
	// Env: SIGNON_PROVIDER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound provider requests
	// (e.g. "15s").
	// Env: SIGNON_PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the stub identity provider's listener and token settings.
type Server struct {
	// Address is the TCP address on which the provider listens, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SIGNON_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSecret is the secret key used to sign issued bearer tokens.
	// Must be kept confidential.
	// Env: SIGNON_SERVER_TOKEN_SECRET
	TokenSecret string `env:"TOKEN_SECRET"`

	// TokenTTL specifies how long an issued token remains valid
	// (e.g. "1h", "30m").
	// Env: SIGNON_SERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Storage holds connection settings for the provider's account database.
type Storage struct {
	// DSN is the SQLite database file path used by the stub provider.
	// Env: SIGNON_STORAGE_DATABASE_DSN
	DSN string `env:"DATABASE_DSN"`
}

// Workers holds configuration for the client's background workers.
type Workers struct {
	// ProbeInterval defines how often the readiness prober re-checks the
	// provider health endpoint until the first success (e.g. "2s").
	// Env: SIGNON_WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// defaults returns the built-in fallback configuration merged in after
// environment variables and flags.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Provider: Provider{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			Address:     "localhost:8080",
			TokenSecret: "local-dev-secret",
			TokenTTL:    time.Hour,
		},
		Storage: Storage{
			DSN: "signon.db",
		},
		Workers: Workers{
			ProbeInterval: 2 * time.Second,
		},
	}
}

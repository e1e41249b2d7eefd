// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlagSet_AllFlags(t *testing.T) {
	cfg := parseFlagSet([]string{
		"-a", "localhost:9000",
		"-d", "/tmp/signon.db",
		"-p", "http://provider:9000",
		"-request-timeout", "45s",
		"-probe-interval", "3s",
		"-token-secret", "flag_secret",
		"-token-ttl", "30m",
	})

	assert.Equal(t, "localhost:9000", cfg.Server.Address)
	assert.Equal(t, "/tmp/signon.db", cfg.Storage.DSN)
	assert.Equal(t, "http://provider:9000", cfg.Provider.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Provider.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, "flag_secret", cfg.Server.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.Server.TokenTTL)
}

func TestParseFlagSet_NoFlags(t *testing.T) {
	cfg := parseFlagSet(nil)

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestBuild_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("SIGNON_PROVIDER_BASE_URL", "http://env-provider:9000")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	assert.NoError(t, err)
	assert.Equal(t, "http://env-provider:9000", cfg.Provider.BaseURL)
	// Untouched fields fall back to defaults.
	assert.Equal(t, 15*time.Second, cfg.Provider.RequestTimeout)
	assert.Equal(t, "signon.db", cfg.Storage.DSN)
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Provider: ClientProvider{BaseURL: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Workers:  ClientWorkers{ProbeInterval: 2 * time.Second},
	}
	assert.NoError(t, valid.validate())

	noProvider := &ClientConfig{Workers: ClientWorkers{ProbeInterval: 2 * time.Second}}
	assert.ErrorIs(t, noProvider.validate(), ErrInvalidProviderConfigs)

	noWorkers := &ClientConfig{Provider: valid.Provider}
	assert.ErrorIs(t, noWorkers.validate(), ErrInvalidWorkerConfigs)
}

func TestServerConfigValidate(t *testing.T) {
	valid := &ServerConfig{
		Address:     "localhost:8080",
		DatabaseDSN: "signon.db",
		TokenSecret: "secret",
		TokenTTL:    time.Hour,
	}
	assert.NoError(t, valid.validate())

	assert.ErrorIs(t, (&ServerConfig{DatabaseDSN: "x.db", TokenSecret: "s", TokenTTL: 1}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&ServerConfig{Address: "a", DatabaseDSN: ":memory:", TokenSecret: "s", TokenTTL: 1}).validate(), ErrInvalidStorageConfigs)
	assert.ErrorIs(t, (&ServerConfig{Address: "a", DatabaseDSN: "x.db", TokenTTL: time.Hour}).validate(), ErrInvalidTokenConfigs)
}

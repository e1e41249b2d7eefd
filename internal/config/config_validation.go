// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Provider.BaseURL == "" || cfg.Provider.RequestTimeout == 0 {
		return ErrInvalidProviderConfigs
	}

	if cfg.Workers.ProbeInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.DatabaseDSN == "" || strings.Contains(cfg.DatabaseDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.TokenSecret == "" || cfg.TokenTTL == 0 {
		return ErrInvalidTokenConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the backend configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.GRPCAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.CacheTTL <= 0 || cfg.App.ReplyDelayMin < 0 || cfg.App.ReplyDelayMin > cfg.App.ReplyDelayMax {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.JournalEnabled {
		if cfg.Workers.JournalFlushInterval <= 0 {
			return ErrInvalidWorkerConfigs
		}
		if cfg.App.HashKey == "" {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

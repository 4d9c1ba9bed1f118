// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "calm-companion",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
			CacheTTL:      30 * time.Second,
			ReplyDelayMin: 1500 * time.Millisecond,
			ReplyDelayMax: 2500 * time.Millisecond,
		},
		Storage: Storage{
			Local: Local{DSN: "calm-companion.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			JournalFlushInterval: 30 * time.Second,
		},
	}
}

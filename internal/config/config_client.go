package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey signs journal uploads.
	HashKey string
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
	// CacheTTL bounds the lifetime of cached backend reads.
	CacheTTL time.Duration
	// ReplyDelayMin and ReplyDelayMax bound the simulated typing delay.
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the session store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	JournalEnabled       bool
	JournalFlushInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			LogLevel:      cfg.App.LogLevel,
			CacheTTL:      cfg.App.CacheTTL,
			ReplyDelayMin: cfg.App.ReplyDelayMin,
			ReplyDelayMax: cfg.App.ReplyDelayMax,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		Workers: ClientWorkers{
			JournalEnabled:       cfg.Workers.JournalEnabled,
			JournalFlushInterval: cfg.Workers.JournalFlushInterval,
		},
	}
}

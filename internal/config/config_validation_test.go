package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/calm"
	cfg.App.TokenSignKey = "sign"
	cfg.App.HashKey = "hash"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no hash key", mutate: func(c *StructuredConfig) { c.App.HashKey = "" }, wantErr: ErrInvalidAppConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
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

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no backend", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "inverted delays", mutate: func(c *ClientConfig) {
			c.App.ReplyDelayMin, c.App.ReplyDelayMax = c.App.ReplyDelayMax, c.App.ReplyDelayMin
		}, wantErr: ErrInvalidAppConfigs},
		{name: "no cache ttl", mutate: func(c *ClientConfig) { c.App.CacheTTL = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "journal without hash key", mutate: func(c *ClientConfig) { c.Workers.JournalEnabled = true }, wantErr: ErrInvalidAppConfigs},
		{name: "journal without interval", mutate: func(c *ClientConfig) {
			c.Workers.JournalEnabled = true
			c.App.HashKey = "hash"
			c.Workers.JournalFlushInterval = 0
		}, wantErr: ErrInvalidWorkerConfigs},
		{name: "journal configured", mutate: func(c *ClientConfig) {
			c.Workers.JournalEnabled = true
			c.App.HashKey = "hash"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(Defaults())
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

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// companion client and the backend. It is populated by merging values from
// a .env file, environment variables, command-line flags, an optional JSON
// file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, integrity and behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the backend database and client session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB is the backend PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Local is the client-side SQLite session store.
	Local Local `envPrefix:"LOCAL_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key shared by client and server for the
	// HashSHA256 integrity check on journal uploads.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// PasswordCost is the bcrypt cost of stored password digests. Zero or
	// out-of-range values fall back to bcrypt.DefaultCost.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// CacheTTL bounds how long client-side query results are reused.
	// Env: APP_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// ReplyDelayMin and ReplyDelayMax bound the simulated typing delay
	// before the companion answers.
	// Env: APP_REPLY_DELAY_MIN, APP_REPLY_DELAY_MAX
	ReplyDelayMin time.Duration `env:"REPLY_DELAY_MIN"`
	ReplyDelayMax time.Duration `env:"REPLY_DELAY_MAX"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the REST API, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the backend database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client session database settings.
type Local struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the client's outbound settings.
type Adapter struct {
	// HTTPAddress is the base URL of the backend (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for backend calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// JournalEnabled turns on mirroring of chat messages to the backend.
	// Env: WORKERS_JOURNAL_ENABLED
	JournalEnabled bool `env:"JOURNAL_ENABLED"`

	// JournalFlushInterval is how often queued journal entries are uploaded.
	// Env: WORKERS_JOURNAL_FLUSH_INTERVAL
	JournalFlushInterval time.Duration `env:"JOURNAL_FLUSH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the backend
// configuration. For non-zero fields the first source wins:
//  1. Environment variables (after loading .env, if present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

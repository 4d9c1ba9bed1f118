// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the companion backend.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Every call is a single request/response exchange. There are no retries;
// failures are returned to the caller. HTTP statuses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/calm-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the backend.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetProfile returns the caller's profile. It returns [ErrNotFound]
	// (wrapped) when the caller has not created one yet.
	GetProfile(ctx context.Context) (models.UserProfile, error)

	// SaveProfile creates or replaces the caller's profile.
	SaveProfile(ctx context.Context, profile models.UserProfile) error

	// GetRole returns the caller's role.
	GetRole(ctx context.Context) (models.RoleResponse, error)

	// GetStaticMessage returns the welcome message shown at the top of a chat.
	GetStaticMessage(ctx context.Context) (string, error)

	// GetStaticAssistantMessage returns the general-purpose assistant reply.
	GetStaticAssistantMessage(ctx context.Context) (string, error)

	// GetSupportedLocales lists the languages the backend knows.
	GetSupportedLocales(ctx context.Context) ([]models.Locale, error)

	// GetCurrentLocale returns the caller's preferred locale or the default one.
	GetCurrentLocale(ctx context.Context) (models.Locale, error)

	// AnalyzeSentiment asks the backend for a sentiment label of text.
	AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResponse, error)

	// DetectLanguage asks the backend for the locale code of text.
	DetectLanguage(ctx context.Context, text string) (string, error)

	// GetConversationHistory returns stored entries, optionally filtered by
	// locale code. An empty locale returns everything.
	GetConversationHistory(ctx context.Context, locale string) ([]models.ConversationEntry, error)

	// SaveConversationEntries uploads a batch of entries. The integrity hash
	// is computed by the adapter.
	SaveConversationEntries(ctx context.Context, entries []models.ConversationEntry) error

	// Version returns the backend build info.
	Version(ctx context.Context) (models.VersionInfo, error)
}

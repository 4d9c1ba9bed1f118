package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress, applies the request
// timeout, and initialises the shared HMAC hasher pool used for the journal
// upload integrity hash.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs credentials to /api/auth/register and keeps the bearer
// token from the Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login POSTs credentials to /api/auth/login and keeps the bearer token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.authenticate").
		Str("path", path).Int64("user_id", userID).Msg("authenticated")

	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := h.getJSON(ctx, "/api/profile", &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put("/api/profile")
	if err != nil {
		return fmt.Errorf("save profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetRole(ctx context.Context) (models.RoleResponse, error) {
	var role models.RoleResponse
	if err := h.getJSON(ctx, "/api/roles/me", &role); err != nil {
		return models.RoleResponse{}, err
	}
	return role, nil
}

func (h *httpServerAdapter) GetStaticMessage(ctx context.Context) (string, error) {
	var msg models.StaticMessageResponse
	if err := h.getJSON(ctx, "/api/messages/static", &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (h *httpServerAdapter) GetStaticAssistantMessage(ctx context.Context) (string, error) {
	var msg models.StaticMessageResponse
	if err := h.getJSON(ctx, "/api/messages/assistant", &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (h *httpServerAdapter) GetSupportedLocales(ctx context.Context) ([]models.Locale, error) {
	var locales []models.Locale
	if err := h.getJSON(ctx, "/api/locales", &locales); err != nil {
		return nil, err
	}
	return locales, nil
}

func (h *httpServerAdapter) GetCurrentLocale(ctx context.Context) (models.Locale, error) {
	var locale models.Locale
	if err := h.getJSON(ctx, "/api/locales/current", &locale); err != nil {
		return models.Locale{}, err
	}
	return locale, nil
}

func (h *httpServerAdapter) AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResponse, error) {
	var result models.SentimentResponse
	if err := h.postJSON(ctx, "/api/analysis/sentiment", models.TextRequest{Text: text}, &result); err != nil {
		return models.SentimentResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) DetectLanguage(ctx context.Context, text string) (string, error) {
	var result models.LanguageResponse
	if err := h.postJSON(ctx, "/api/analysis/language", models.TextRequest{Text: text}, &result); err != nil {
		return "", err
	}
	return result.Language, nil
}

// GetConversationHistory GETs /api/conversation/entries with an optional
// locale query parameter.
func (h *httpServerAdapter) GetConversationHistory(ctx context.Context, locale string) ([]models.ConversationEntry, error) {
	req := h.authedRequest(ctx)
	if locale != "" {
		req.SetQueryParam("locale", locale)
	}

	resp, err := req.Get("/api/conversation/entries")
	if err != nil {
		return nil, fmt.Errorf("conversation history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.ConversationEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode conversation history: %w", err)
	}
	return entries, nil
}

// SaveConversationEntries POSTs the batch together with the HMAC of the
// JSON-encoded entries.
func (h *httpServerAdapter) SaveConversationEntries(ctx context.Context, entries []models.ConversationEntry) error {
	req := models.SaveEntriesRequest{
		Entries: entries,
		Hash:    computeTransportHash(entries),
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/conversation/entries")
	if err != nil {
		return fmt.Errorf("save conversation entries request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo
	if err := h.getJSON(ctx, "/api/version", &info); err != nil {
		return models.VersionInfo{}, err
	}
	return info, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}

package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHashKey = "test-secret-key"

func testEntries() []models.ConversationEntry {
	ts := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	return []models.ConversationEntry{
		{Sender: models.SenderUser, Message: "I feel anxious", Timestamp: ts},
		{Sender: models.SenderAssistant, Message: "I hear you", Timestamp: ts.Add(2 * time.Second)},
	}
}

// signedBody builds a journal batch the way the client adapter does.
func signedBody(t *testing.T, entries []models.ConversationEntry) io.Reader {
	t.Helper()
	payload, err := json.Marshal(entries)
	require.NoError(t, err)
	return jsonBody(t, models.SaveEntriesRequest{Entries: entries, Hash: hex.EncodeToString(utils.Hash(payload))})
}

// ─────────────────────────────────────────────
// journalHashing
// ─────────────────────────────────────────────

func TestJournalHashing_TableTest(t *testing.T) {
	utils.InitHasherPool(testHashKey)

	tests := []struct {
		name       string
		body       func(t *testing.T) io.Reader
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "valid hash",
			body:       func(t *testing.T) io.Reader { return signedBody(t, testEntries()) },
			wantStatus: http.StatusOK,
		},
		{
			name: "tampered entries",
			body: func(t *testing.T) io.Reader {
				entries := testEntries()
				payload, _ := json.Marshal(entries)
				entries[0].Message = "changed"
				return jsonBody(t, models.SaveEntriesRequest{Entries: entries, Hash: hex.EncodeToString(utils.Hash(payload))})
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgIntegrityCheckFailed,
		},
		{
			name: "missing hash",
			body: func(t *testing.T) io.Reader {
				return jsonBody(t, models.SaveEntriesRequest{Entries: testEntries()})
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgIntegrityCheckFailed,
		},
		{
			name:       "invalid json",
			body:       func(*testing.T) io.Reader { return bytes.NewBufferString("{") },
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			var forwarded []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				forwarded, _ = io.ReadAll(r.Body)
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			h.journalHashing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/conversation/entries", tt.body(t)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
				return
			}
			assert.NotEmpty(t, forwarded, "body must be restored for the next handler")
		})
	}
}

// ─────────────────────────────────────────────
// Conversation entries
// ─────────────────────────────────────────────

func TestSaveConversationEntries(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	h, ts := newTestHandler(t)
	ts.expectAuth(7, models.RoleUser)

	ts.conversation.EXPECT().SaveEntries(gomock.Any(), int64(7), testEntries()).Return(nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, newAuthedRequest(http.MethodPost, "/api/conversation/entries", signedBody(t, testEntries())))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSaveConversationEntries_InvalidEntries(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	h, ts := newTestHandler(t)
	ts.expectAuth(7, models.RoleUser)

	ts.conversation.EXPECT().SaveEntries(gomock.Any(), int64(7), gomock.Any()).
		Return(fmt.Errorf("%w: entry 0: %w", service.ErrInvalidDataProvided, validators.ErrInvalidSender))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, newAuthedRequest(http.MethodPost, "/api/conversation/entries", signedBody(t, testEntries())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidSender, errorMessage(t, rec))
}

func TestGetConversationEntries(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		locale string
	}{
		{"all languages", "", ""},
		{"filtered", "?locale=hi-IN", models.LocaleHindi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.expectAuth(7, models.RoleUser)
			ts.conversation.EXPECT().GetHistory(gomock.Any(), int64(7), tt.locale).
				Return([]models.ConversationEntry{}, nil)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, newAuthedRequest(http.MethodGet, "/api/conversation/entries"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestGetConversationEntries_UnknownLocale(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.expectAuth(7, models.RoleUser)
	ts.conversation.EXPECT().GetHistory(gomock.Any(), int64(7), "xx").Return(nil, service.ErrUnknownLanguage)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, newAuthedRequest(http.MethodGet, "/api/conversation/entries?locale=xx", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUnknownLanguage, errorMessage(t, rec))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConversationEntry is a stored line of conversation history.
type ConversationEntry struct {
	ID     int64 `json:"id,omitempty"`
	UserID int64 `json:"-"`

	Sender  Sender `json:"sender"`
	Message string `json:"message"`

	// Language is the detected locale code. The backend fills it when empty.
	Language string `json:"language,omitempty"`

	// Color is the sentiment colour. The backend fills it when empty.
	Color string `json:"color,omitempty"`

	// ExpectedReply holds the reply the assistant gave to this user message.
	ExpectedReply string `json:"expected_reply,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the ConversationEntry model.
func (e ConversationEntry) TableName() string {
	return "conversation_entries"
}

// SaveEntriesRequest is a batch upload of conversation entries.
// Hash is the hex HMAC-SHA256 of the JSON-encoded Entries.
type SaveEntriesRequest struct {
	Entries []ConversationEntry `json:"entries"`
	Hash    string              `json:"hash"`
}

// HistoryFilter narrows a conversation history query.
type HistoryFilter struct {
	UserID int64
	// Locale restricts entries to one language. Empty means all.
	Locale string
	Limit  uint64
}

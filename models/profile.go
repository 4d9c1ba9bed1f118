// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// UserProfile is the display identity of a user. It is owned by the backend.
type UserProfile struct {
	UserID int64 `json:"-"`

	Name string `json:"name"`

	// PreferredLanguage is a locale code such as "ta-IN". Empty means unset.
	PreferredLanguage *string `json:"preferred_language,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the UserProfile model.
func (p UserProfile) TableName() string {
	return "profiles"
}

// Language returns the preferred language or an empty string.
func (p UserProfile) Language() string {
	if p.PreferredLanguage == nil {
		return ""
	}
	return *p.PreferredLanguage
}

// Initials returns the upper-cased first letters of the first two words of the name.
func (p UserProfile) Initials() string {
	var b strings.Builder
	for i, word := range strings.Fields(p.Name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

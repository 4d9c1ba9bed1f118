// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Locale describes a language the companion can talk about.
type Locale struct {
	Code         string   `json:"code"`
	Countries    []string `json:"countries"`
	LanguageName string   `json:"language_name"`
	LocaleSymbol string   `json:"locale_symbol"`
	Default      bool     `json:"default"`
}

// Supported locale codes. Tanglish is Tamil written in Latin script.
const (
	LocaleTamil    = "ta-IN"
	LocaleEnglish  = "en-IN"
	LocaleTelugu   = "te-IN"
	LocaleKannada  = "kn-IN"
	LocaleHindi    = "hi-IN"
	LocaleMarathi  = "mr-IN"
	LocaleTanglish = "ta-Latn-IN"

	DefaultLocale = LocaleEnglish
)

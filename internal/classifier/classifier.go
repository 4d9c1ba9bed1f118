// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package classifier picks a canned companion reply for a user message.
//
// Classification is a fixed, ordered keyword lookup over the lower-cased
// text. Crisis terms are always checked first so that a message mentioning
// both self-harm and stress is routed to the crisis reply.
package classifier

import "strings"

// Category is the kind of reply a message deserves.
type Category int

const (
	General Category = iota
	Crisis
	Anxiety
	Sadness
)

func (c Category) String() string {
	switch c {
	case Crisis:
		return "crisis"
	case Anxiety:
		return "anxiety"
	case Sadness:
		return "sadness"
	default:
		return "general"
	}
}

type rule struct {
	category Category
	keywords []string
}

// rules is evaluated in order; the first list with a hit wins.
var rules = []rule{
	{category: Crisis, keywords: crisisKeywords},
	{category: Anxiety, keywords: anxietyKeywords},
	{category: Sadness, keywords: sadnessKeywords},
}

// Classify returns the category of text. It never fails: text without a
// known keyword is [General].
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			return r.category
		}
	}
	return General
}

// Reply returns the canned reply for c. For [General] a non-blank fallback
// (usually the backend's static assistant message) takes precedence over
// the built-in default.
func Reply(c Category, fallback string) string {
	switch c {
	case Crisis:
		return CrisisReply
	case Anxiety:
		return AnxietyReply
	case Sadness:
		return SadnessReply
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return DefaultReply
}

// Respond classifies text and returns the matching reply.
func Respond(text, fallback string) (Category, string) {
	c := Classify(text)
	return c, Reply(c, fallback)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sentiment is the coarse mood label assigned to a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentAnxious  Sentiment = "anxious"
	SentimentSad      Sentiment = "sad"
	SentimentCrisis   Sentiment = "crisis"
	SentimentNeutral  Sentiment = "neutral"
)

// TextRequest is the body of every text-in endpoint.
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse is the body of the text helper endpoints.
type TextResponse struct {
	Text string `json:"text"`
}

// SentimentResponse is returned by sentiment analysis.
type SentimentResponse struct {
	Sentiment Sentiment `json:"sentiment"`
	Color     string    `json:"color"`
	Score     int       `json:"score"`
}

// LanguageResponse is returned by language detection.
type LanguageResponse struct {
	Language string `json:"language"`
}

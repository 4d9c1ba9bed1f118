package analysis

import (
	"testing"

	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentiment models.Sentiment
		score     int
	}{
		{name: "empty", text: "", sentiment: models.SentimentNeutral},
		{name: "whitespace", text: "  \t ", sentiment: models.SentimentNeutral},
		{name: "no keywords", text: "I went to the market", sentiment: models.SentimentNeutral},
		{name: "anxious", text: "I feel so anxious and stressed", sentiment: models.SentimentAnxious, score: 6},
		{name: "sad", text: "I am lonely and sad", sentiment: models.SentimentSad, score: 6},
		{name: "positive", text: "Feeling grateful and happy today!", sentiment: models.SentimentPositive, score: 6},
		{name: "case insensitive", text: "PANIC", sentiment: models.SentimentAnxious, score: 3},
		{name: "crisis wins over everything", text: "I am sad, anxious and want to end it", sentiment: models.SentimentCrisis, score: 3},
		{name: "crisis phrase with hyphen", text: "thinking about self-harm", sentiment: models.SentimentCrisis, score: 3},
		{name: "whole words only", text: "I studied my diet plan", sentiment: models.SentimentNeutral},
		{name: "highest score wins", text: "sad but happy, grateful and relieved", sentiment: models.SentimentPositive, score: 9},
		{name: "tie prefers anxious over sad", text: "worried and sad", sentiment: models.SentimentAnxious, score: 3},
		{name: "tie prefers sad over positive", text: "sad but good", sentiment: models.SentimentSad, score: 3},
		{name: "romanized keyword", text: "romba kashtam", sentiment: models.SentimentSad, score: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			assert.Equal(t, tt.sentiment, got.Sentiment)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, Color(tt.sentiment), got.Color)
		})
	}
}

func TestColor(t *testing.T) {
	labels := []models.Sentiment{
		models.SentimentPositive, models.SentimentAnxious, models.SentimentSad,
		models.SentimentCrisis, models.SentimentNeutral,
	}

	seen := make(map[string]bool)
	for _, l := range labels {
		c := Color(l)
		assert.NotEmpty(t, c)
		assert.False(t, seen[c], "colour %s reused", c)
		seen[c] = true
	}

	assert.Equal(t, Color(models.SentimentNeutral), Color("mystery"))
}

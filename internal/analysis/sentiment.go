package analysis

import (
	"strings"

	"github.com/MKhiriev/calm-companion/models"
)

const keywordScore = 3

type bucket struct {
	label    models.Sentiment
	keywords []string
}

// crisisKeywords short-circuit scoring: a single hit is enough.
var crisisKeywords = []string{
	"hurt myself", "end it", "suicide", "die", "kill myself", "self harm",
	"no reason to live", "want to disappear",
}

// Order matters: on equal scores the earlier bucket wins.
var keywordBuckets = []bucket{
	{
		label: models.SentimentAnxious,
		keywords: []string{
			"anxious", "anxiety", "stress", "stressed", "stressful", "worried", "worry",
			"worrying", "panic", "nervous", "scared", "afraid", "overwhelmed", "tense",
			"restless", "bayama", "tension",
		},
	},
	{
		label: models.SentimentSad,
		keywords: []string{
			"sad", "depressed", "lonely", "down", "cry", "crying", "hopeless", "empty",
			"heartbroken", "alone", "miss", "missing", "grief", "kashtam", "udaas",
		},
	},
	{
		label: models.SentimentPositive,
		keywords: []string{
			"happy", "grateful", "thankful", "thanks", "better", "good", "great",
			"calm", "relieved", "hopeful", "glad", "excited", "love", "peaceful",
			"santhosham", "nalla", "khush",
		},
	},
}

var sentimentColors = map[models.Sentiment]string{
	models.SentimentPositive: "#8BC34A",
	models.SentimentAnxious:  "#F4A261",
	models.SentimentSad:      "#6C8EBF",
	models.SentimentCrisis:   "#E63946",
	models.SentimentNeutral:  "#A8DADC",
}

// Analyze scores text against the keyword buckets. Each keyword hit adds
// three points and any crisis keyword forces the crisis label. Text without
// hits is neutral.
func Analyze(text string) models.SentimentResponse {
	words := tokenize(text)
	if len(words) == 0 {
		return result(models.SentimentNeutral, 0)
	}
	m := newMatcher(words)

	if crisis := m.score(crisisKeywords); crisis > 0 {
		return result(models.SentimentCrisis, crisis)
	}

	best, bestScore := models.SentimentNeutral, 0
	for _, b := range keywordBuckets {
		if score := m.score(b.keywords); score > bestScore {
			best, bestScore = b.label, score
		}
	}

	return result(best, bestScore)
}

// matcher matches single-word keywords against whole words and phrases
// against the space-joined word sequence, so "die" does not hit "studied".
type matcher struct {
	words  map[string]struct{}
	joined string
}

func newMatcher(words []string) matcher {
	return matcher{
		words:  set(words...),
		joined: " " + strings.Join(words, " ") + " ",
	}
}

func (m matcher) score(keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(m.joined, " "+kw+" ") {
				score += keywordScore
			}
			continue
		}
		if _, ok := m.words[kw]; ok {
			score += keywordScore
		}
	}
	return score
}

// Color returns the display colour of a sentiment label. Unknown labels get
// the neutral colour.
func Color(label models.Sentiment) string {
	if c, ok := sentimentColors[label]; ok {
		return c
	}
	return sentimentColors[models.SentimentNeutral]
}

func result(label models.Sentiment, score int) models.SentimentResponse {
	return models.SentimentResponse{Sentiment: label, Color: Color(label), Score: score}
}

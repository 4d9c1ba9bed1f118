package analysis

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/calm-companion/models"
)

type script struct {
	table  *unicode.RangeTable
	locale string
}

var scripts = []script{
	{table: unicode.Tamil, locale: models.LocaleTamil},
	{table: unicode.Telugu, locale: models.LocaleTelugu},
	{table: unicode.Kannada, locale: models.LocaleKannada},
	{table: unicode.Devanagari, locale: models.LocaleHindi},
}

// Words that occur in Marathi but not in everyday Hindi, and the reverse.
var (
	marathiMarkers = set("आहे", "आहेत", "नाही", "मला", "तुम्ही", "आणि", "होते", "माझे", "माझा", "काय", "खूप", "वाटते", "करतो", "करते")
	hindiMarkers   = set("है", "हैं", "नहीं", "मुझे", "मैं", "और", "था", "मेरा", "मेरी", "क्या", "बहुत", "लगता", "करता", "करती")
)

var tanglishMarkers = set(
	"enna", "romba", "illa", "illai", "irukku", "iruku", "panna", "pannu", "naan", "nee",
	"enakku", "unakku", "kashtam", "seri", "sari", "vanakkam", "sollu", "konjam",
	"paravala", "nalla", "epdi", "eppadi", "yenna", "theriyala", "thookam", "bayama",
	"machan", "santhosham",
)

// DetectLanguage guesses the locale code of text. Indic scripts are
// recognised by the dominant script, Devanagari is split into Marathi and
// Hindi by marker words and Latin text with romanized Tamil markers is
// Tanglish. Everything else, including empty text, is English.
func DetectLanguage(text string) string {
	counts := make([]int, len(scripts))
	for _, r := range text {
		for i, s := range scripts {
			if unicode.Is(s.table, r) {
				counts[i]++
				break
			}
		}
	}

	best, bestCount := -1, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}

	words := tokenize(text)

	if best >= 0 {
		locale := scripts[best].locale
		if locale == models.LocaleHindi && countIn(words, marathiMarkers) > countIn(words, hindiMarkers) {
			return models.LocaleMarathi
		}
		return locale
	}

	if countIn(words, tanglishMarkers) > 0 {
		return models.LocaleTanglish
	}

	return models.DefaultLocale
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r)
	})
}

func countIn(words []string, markers map[string]struct{}) int {
	n := 0
	for _, w := range words {
		if _, ok := markers[w]; ok {
			n++
		}
	}
	return n
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

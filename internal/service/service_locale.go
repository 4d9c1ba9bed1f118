package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type localeDefinition struct {
	code      string
	countries []string

	// nameOverride and symbolOverride replace the CLDR display names for
	// locales CLDR does not name on its own.
	nameOverride   string
	symbolOverride string
}

var localeDefinitions = []localeDefinition{
	{code: models.LocaleEnglish, countries: []string{"IN"}},
	{code: models.LocaleTamil, countries: []string{"IN", "LK", "SG", "MY"}},
	{code: models.LocaleTelugu, countries: []string{"IN"}},
	{code: models.LocaleKannada, countries: []string{"IN"}},
	{code: models.LocaleHindi, countries: []string{"IN"}},
	{code: models.LocaleMarathi, countries: []string{"IN"}},
	{code: models.LocaleTanglish, countries: []string{"IN", "LK"}, nameOverride: "Tanglish", symbolOverride: "Tanglish"},
}

type localeService struct {
	locales []models.Locale
	byCode  map[string]models.Locale
	matcher language.Matcher

	profileRepository store.ProfileRepository

	logger *logger.Logger
}

// NewLocaleService builds the supported locale table. Display names come from
// the CLDR data in golang.org/x/text.
func NewLocaleService(profileRepository store.ProfileRepository, logger *logger.Logger) LocaleService {
	s := &localeService{
		byCode:            make(map[string]models.Locale, len(localeDefinitions)),
		profileRepository: profileRepository,
		logger:            logger,
	}

	tags := make([]language.Tag, 0, len(localeDefinitions))
	for _, def := range localeDefinitions {
		tag := language.MustParse(def.code)
		tags = append(tags, tag)

		locale := models.Locale{
			Code:         def.code,
			Countries:    def.countries,
			LanguageName: def.nameOverride,
			LocaleSymbol: def.symbolOverride,
			Default:      def.code == models.DefaultLocale,
		}
		base, _ := tag.Base()
		if locale.LanguageName == "" {
			locale.LanguageName = display.English.Languages().Name(base)
		}
		if locale.LocaleSymbol == "" {
			locale.LocaleSymbol = display.Self.Name(base)
		}
		if locale.LocaleSymbol == "" {
			locale.LocaleSymbol = locale.LanguageName
		}

		s.locales = append(s.locales, locale)
		s.byCode[def.code] = locale
	}
	s.matcher = language.NewMatcher(tags)

	return s
}

func (s *localeService) SupportedLocales(ctx context.Context) []models.Locale {
	out := make([]models.Locale, len(s.locales))
	copy(out, s.locales)
	return out
}

// CurrentLocale returns the locale of the user's preferred language, or the
// default locale when the user has no profile or no preference.
func (s *localeService) CurrentLocale(ctx context.Context, userID int64) (models.Locale, error) {
	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return s.byCode[models.DefaultLocale], nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("failed to load profile for locale")
		return models.Locale{}, fmt.Errorf("get profile: %w", err)
	}

	if code, ok := s.Normalize(profile.Language()); ok {
		return s.byCode[code], nil
	}
	return s.byCode[models.DefaultLocale], nil
}

// Normalize parses code as a BCP 47 tag and matches it against the supported
// set. Only exact or high-confidence matches count, so "hi" resolves to
// "hi-IN" while "fr-FR" is rejected.
func (s *localeService) Normalize(code string) (string, bool) {
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}

	if locale, ok := s.byCode[tag.String()]; ok {
		return locale.Code, true
	}

	_, index, confidence := s.matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return s.locales[index].Code, true
}

func (s *localeService) IsSupported(code string) bool {
	_, ok := s.Normalize(code)
	return ok
}

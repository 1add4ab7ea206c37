package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
)

// Supported UI themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Supported UI languages.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.Arabic,
})

// Session is the explicit application context for per-user state that used to
// live in ambient globals: active language and theme. It restores itself from
// the settings repository on boot and persists every change.
type Session struct {
	settings repository.SettingsRepository

	mu       sync.RWMutex
	language string
	theme    string
}

// NewSession creates a session with the safe defaults (English, light theme).
func NewSession(settings repository.SettingsRepository) *Session {
	return &Session{
		settings: settings,
		language: LanguageEnglish,
		theme:    ThemeLight,
	}
}

// Load restores language and theme from the store. Missing or unreadable
// preferences keep their defaults; Load never fails.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lang string
	if s.settings.GetSetting(ctx, model.SettingLanguage, &lang) {
		if canonical, err := canonicalLanguage(lang); err == nil {
			s.language = canonical
		} else {
			log.Warn().Str("language", lang).Msg("stored language not supported, keeping default")
		}
	}

	var theme string
	if s.settings.GetSetting(ctx, model.SettingTheme, &theme) {
		if theme == ThemeLight || theme == ThemeDark {
			s.theme = theme
		} else {
			log.Warn().Str("theme", theme).Msg("stored theme not supported, keeping default")
		}
	}
}

// Language returns the active language code.
func (s *Session) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Theme returns the active theme.
func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetLanguage canonicalizes and persists the language, then applies it.
func (s *Session) SetLanguage(ctx context.Context, lang string) error {
	canonical, err := canonicalLanguage(lang)
	if err != nil {
		return err
	}

	if err := s.settings.SetSetting(ctx, model.SettingLanguage, canonical); err != nil {
		return err
	}

	s.mu.Lock()
	s.language = canonical
	s.mu.Unlock()
	return nil
}

// SetTheme persists the theme, then applies it.
func (s *Session) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unsupported theme %q", theme)
	}

	if err := s.settings.SetSetting(ctx, model.SettingTheme, theme); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

// canonicalLanguage maps any parseable tag onto one of the supported
// languages ("en-US" becomes "en"), rejecting tags that match neither.
func canonicalLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("unsupported language %q", lang)
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("unsupported language %q", lang)
	}

	if index == 1 {
		return LanguageArabic, nil
	}
	return LanguageEnglish, nil
}

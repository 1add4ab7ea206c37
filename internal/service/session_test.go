package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascend-local-store/internal/repository"
)

func TestSession_Defaults(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepository(openStore(t, filepath.Join(t.TempDir(), "store.db")))

	s := NewSession(repo)
	assert.Equal(t, LanguageEnglish, s.Language())
	assert.Equal(t, ThemeLight, s.Theme())

	// Loading an empty store keeps the defaults.
	s.Load(context.Background())
	assert.Equal(t, LanguageEnglish, s.Language())
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestSession_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	repo := repository.NewSQLiteSettingsRepository(openStore(t, path))
	s := NewSession(repo)
	require.NoError(t, s.SetLanguage(ctx, "ar"))
	require.NoError(t, s.SetTheme(ctx, ThemeDark))

	// Fresh session over the same file restores both preferences.
	restored := NewSession(repository.NewSQLiteSettingsRepository(openStore(t, path)))
	restored.Load(ctx)
	assert.Equal(t, LanguageArabic, restored.Language())
	assert.Equal(t, ThemeDark, restored.Theme())
}

func TestSession_CanonicalizesLanguageTags(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteSettingsRepository(openStore(t, filepath.Join(t.TempDir(), "store.db")))
	s := NewSession(repo)

	require.NoError(t, s.SetLanguage(ctx, "en-US"))
	assert.Equal(t, "en", s.Language())

	require.NoError(t, s.SetLanguage(ctx, "ar-EG"))
	assert.Equal(t, "ar", s.Language())
}

func TestSession_RejectsUnsupportedValues(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteSettingsRepository(openStore(t, filepath.Join(t.TempDir(), "store.db")))
	s := NewSession(repo)

	assert.Error(t, s.SetLanguage(ctx, "not a tag"))
	assert.Error(t, s.SetTheme(ctx, "solarized"))

	// Rejected values never overwrite the active state.
	assert.Equal(t, LanguageEnglish, s.Language())
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestSession_IgnoresCorruptStoredLanguage(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteSettingsRepository(openStore(t, filepath.Join(t.TempDir(), "store.db")))

	// A stored value outside the supported set falls back to the default.
	require.NoError(t, repo.SetSetting(ctx, "language", "zz-unknown"))

	s := NewSession(repo)
	s.Load(ctx)
	assert.Equal(t, LanguageEnglish, s.Language())
}

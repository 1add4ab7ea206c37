package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascend-local-store/internal/model"
)

func TestSettingsRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteSettingsRepository(openTestDB(t))

	require.NoError(t, repo.SetSetting(ctx, model.SettingLanguage, "ar"))

	var lang string
	ok := repo.GetSetting(ctx, model.SettingLanguage, &lang)
	assert.True(t, ok)
	assert.Equal(t, "ar", lang)
}

func TestSettingsRepository_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteSettingsRepository(openTestDB(t))

	require.NoError(t, repo.SetSetting(ctx, model.SettingTheme, "light"))
	require.NoError(t, repo.SetSetting(ctx, model.SettingTheme, "dark"))

	var theme string
	ok := repo.GetSetting(ctx, model.SettingTheme, &theme)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestSettingsRepository_AbsentKeyReportsFalse(t *testing.T) {
	repo := NewSQLiteSettingsRepository(openTestDB(t))

	var dest string
	ok := repo.GetSetting(context.Background(), "never-written", &dest)
	assert.False(t, ok)
	assert.Empty(t, dest)
}

func TestSettingsRepository_StoresArbitraryPayloads(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteSettingsRepository(openTestDB(t))

	type prefs struct {
		Currency string   `json:"currency"`
		Favorite []int64  `json:"favorite"`
		Ratio    float64  `json:"ratio"`
		Tags     []string `json:"tags"`
	}
	want := prefs{Currency: "USD", Favorite: []int64{1, 4, 7}, Ratio: 0.75, Tags: []string{"sale"}}
	require.NoError(t, repo.SetSetting(ctx, "prefs", want))

	var got prefs
	ok := repo.GetSetting(ctx, "prefs", &got)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSettingsRepository_UndecodablePayloadIsAbsence(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteSettingsRepository(openTestDB(t))

	require.NoError(t, repo.SetSetting(ctx, "language", []string{"not", "a", "string"}))

	var lang string
	ok := repo.GetSetting(ctx, "language", &lang)
	assert.False(t, ok)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascend-local-store/pkg/objecturl"
)

func TestImageRepository_SaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	urls := objecturl.NewRegistry()
	repo := NewSQLiteImageRepository(openTestDB(t), urls)

	blob := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	id, err := repo.SaveImage(ctx, blob, "img-1", "hero.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "img-1", id)

	url, err := repo.LoadImage(ctx, "img-1")
	require.NoError(t, err)
	require.True(t, objecturl.IsObjectURL(url))

	data, mime, ok := urls.Resolve(url)
	require.True(t, ok)
	assert.Equal(t, blob, data)
	assert.Equal(t, "image/jpeg", mime)
}

func TestImageRepository_LoadAbsentIsEmptyNotError(t *testing.T) {
	urls := objecturl.NewRegistry()
	repo := NewSQLiteImageRepository(openTestDB(t), urls)

	url, err := repo.LoadImage(context.Background(), "no-such-image")
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Zero(t, urls.Len())
}

func TestImageRepository_SaveOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteImageRepository(openTestDB(t), objecturl.NewRegistry())

	_, err := repo.SaveImage(ctx, []byte("v1"), "img-1", "a.png", "image/png")
	require.NoError(t, err)
	_, err = repo.SaveImage(ctx, []byte("v2"), "img-1", "b.webp", "image/webp")
	require.NoError(t, err)

	rec, err := repo.GetImage(ctx, "img-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, []byte("v2"), rec.Blob)
	assert.Equal(t, "b.webp", rec.FileName)
	assert.Equal(t, "image/webp", rec.MimeType)
}

func TestImageRepository_GetImagePopulatesMetadata(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteImageRepository(openTestDB(t), objecturl.NewRegistry())

	// Empty file name falls back to a stable default.
	_, err := repo.SaveImage(ctx, []byte("payload"), "img-2", "", "image/jpeg")
	require.NoError(t, err)

	rec, err := repo.GetImage(ctx, "img-2")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "img-2", rec.ID)
	assert.Equal(t, "image.jpg", rec.FileName)
	assert.Positive(t, rec.CreatedAt)

	absent, err := repo.GetImage(ctx, "img-3")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

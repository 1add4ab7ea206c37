package repository

import (
	"context"

	"ascend-local-store/internal/model"
)

// CatalogRepository defines bulk-oriented access to the product collection.
//
// Ordering: GetCachedCatalog returns records in engine-native order; callers
// that need a specific order sort client-side. Writes from concurrent callers
// are last-commit-wins.
type CatalogRepository interface {
	// CacheCatalog upserts every product in one transaction. All-or-nothing:
	// if any row fails (including a slug uniqueness violation) the whole
	// batch is rolled back.
	CacheCatalog(ctx context.Context, products []model.Product) error

	// AddProducts is the bulk-import entry point used by the ETL pipeline.
	// Behaviorally identical to CacheCatalog; kept distinct for intent.
	AddProducts(ctx context.Context, products []model.Product) error

	// GetCachedCatalog returns every product. Empty slice, not an error,
	// when the collection is empty.
	GetCachedCatalog(ctx context.Context) ([]model.Product, error)

	// GetByCategory returns the products whose category matches exactly.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetBySlug returns the product with the given slug, or nil if absent.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// ClearStore removes all records from the named collection. Irreversible.
	ClearStore(ctx context.Context, collection string) error

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)
}

// ImageRepository persists binary payloads independent of the catalog.
type ImageRepository interface {
	// SaveImage writes {id, blob, fileName, mimeType, createdAt=now},
	// overwriting any record with the same id, and returns the id.
	SaveImage(ctx context.Context, blob []byte, id, fileName, mimeType string) (string, error)

	// LoadImage returns a transient object URL for the stored blob, or ""
	// (no error) if absent. The caller owns the URL and must revoke it.
	LoadImage(ctx context.Context, id string) (string, error)

	// GetImage returns the raw record, or nil if absent.
	GetImage(ctx context.Context, id string) (*model.ImageRecord, error)
}

// SettingsRepository persists small preference values keyed by name.
//
// Unlike the catalog and image repositories, reads deliberately coalesce
// failures into absence: a missing preference degrades to a default and must
// never surface as a user-visible error.
type SettingsRepository interface {
	// SetSetting upserts {key, data, timestamp=now}. Last-write-wins.
	SetSetting(ctx context.Context, key string, value any) error

	// GetSetting decodes the stored payload into dest and reports whether
	// the key was present. Read failures report absence.
	GetSetting(ctx context.Context, key string, dest any) bool
}

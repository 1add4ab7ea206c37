package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"ascend-local-store/internal/cache"
	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
	"ascend-local-store/internal/seed"
)

// CatalogSource identifies where a hydrated catalog came from.
type CatalogSource string

const (
	// SourceStore: the local store had records; they are authoritative.
	SourceStore CatalogSource = "store"
	// SourceSeed: the store was empty; the bundled defaults were served and
	// written back so the next boot hits the store.
	SourceSeed CatalogSource = "seed"
	// SourceFallback: the store failed entirely; defaults were served
	// without write-back.
	SourceFallback CatalogSource = "fallback"
)

const catalogCacheKey = "catalog:all"

// CatalogService coordinates the cache-aside read path over the catalog
// repository, with an in-memory read cache in front of repeated full scans.
type CatalogService struct {
	repo     repository.CatalogRepository
	cache    cache.Cache
	cacheTTL time.Duration
	defaults func() []model.Product
}

// NewCatalogService creates a catalog service. cache may be nil to disable
// the read cache.
func NewCatalogService(repo repository.CatalogRepository, c cache.Cache, cacheTTL time.Duration) *CatalogService {
	if repo == nil {
		return nil
	}
	return &CatalogService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		defaults: seed.DefaultCatalog,
	}
}

// Hydrate implements the boot read path: store first, bundled defaults on an
// empty store (with write-back), defaults without write-back when the store
// fails entirely. It never returns an error; a broken store degrades to the
// defaults instead of blocking the caller.
func (s *CatalogService) Hydrate(ctx context.Context) ([]model.Product, CatalogSource) {
	products, err := s.repo.GetCachedCatalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("catalog hydration failed, serving bundled defaults")
		return s.defaults(), SourceFallback
	}

	if len(products) > 0 {
		log.Debug().Int("count", len(products)).Msg("catalog hydrated from local store")
		return products, SourceStore
	}

	defaults := s.defaults()
	if err := s.repo.CacheCatalog(ctx, defaults); err != nil {
		log.Warn().Err(err).Msg("failed to seed catalog, defaults served unpersisted")
		return defaults, SourceFallback
	}
	s.invalidate(ctx)

	log.Info().Int("count", len(defaults)).Msg("empty store seeded with bundled catalog")
	return defaults, SourceSeed
}

// List returns the full catalog, through the read cache when one is set.
func (s *CatalogService) List(ctx context.Context) ([]model.Product, error) {
	if s.cache == nil {
		return s.repo.GetCachedCatalog(ctx)
	}

	data, err := s.cache.GetOrSet(ctx, catalogCacheKey, s.cacheTTL, func() ([]byte, error) {
		products, err := s.repo.GetCachedCatalog(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(products)
	})
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ByCategory returns the products in the given category.
func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

// BySlug returns the product with the given slug, or nil when absent.
func (s *CatalogService) BySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Persist upserts the given catalog (refresh-cache intent).
func (s *CatalogService) Persist(ctx context.Context, products []model.Product) error {
	if err := s.repo.CacheCatalog(ctx, products); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Import bulk-adds products from the ETL pipeline.
func (s *CatalogService) Import(ctx context.Context, products []model.Product) error {
	if err := s.repo.AddProducts(ctx, products); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Reset clears the product collection and reseeds the bundled defaults.
func (s *CatalogService) Reset(ctx context.Context) error {
	if err := s.repo.ClearStore(ctx, repository.CollectionProducts); err != nil {
		return err
	}
	if err := s.repo.CacheCatalog(ctx, s.defaults()); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Clear removes every product. Irreversible.
func (s *CatalogService) Clear(ctx context.Context) error {
	if err := s.repo.ClearStore(ctx, repository.CollectionProducts); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Count returns the number of stored products.
func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}

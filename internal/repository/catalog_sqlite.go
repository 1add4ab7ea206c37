package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"ascend-local-store/internal/model"
)

// SQLiteCatalogRepository implements CatalogRepository on the embedded store.
type SQLiteCatalogRepository struct {
	db *DB
}

// NewSQLiteCatalogRepository creates a catalog repository over an open handle.
func NewSQLiteCatalogRepository(db *DB) *SQLiteCatalogRepository {
	return &SQLiteCatalogRepository{db: db}
}

const productColumns = `id, name, name_ar, price, category, category_ar, image,
	description, description_ar, rating, colors, brand, in_stock, quantity,
	slug, seo_title, seo_description, vendor_id`

const upsertProductQuery = `
	INSERT INTO products (` + productColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		name_ar = excluded.name_ar,
		price = excluded.price,
		category = excluded.category,
		category_ar = excluded.category_ar,
		image = excluded.image,
		description = excluded.description,
		description_ar = excluded.description_ar,
		rating = excluded.rating,
		colors = excluded.colors,
		brand = excluded.brand,
		in_stock = excluded.in_stock,
		quantity = excluded.quantity,
		slug = excluded.slug,
		seo_title = excluded.seo_title,
		seo_description = excluded.seo_description,
		vendor_id = excluded.vendor_id`

// CacheCatalog upserts the whole batch in a single transaction.
func (r *SQLiteCatalogRepository) CacheCatalog(ctx context.Context, products []model.Product) error {
	return r.upsertBatch(ctx, "cache catalog", products)
}

// AddProducts is the ETL/import entry point. Same upsert semantics as
// CacheCatalog, exposed separately for intent clarity.
func (r *SQLiteCatalogRepository) AddProducts(ctx context.Context, products []model.Product) error {
	return r.upsertBatch(ctx, "add products", products)
}

func (r *SQLiteCatalogRepository) upsertBatch(ctx context.Context, op string, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return persistErr(op, fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertProductQuery)
	if err != nil {
		return persistErr(op, fmt.Errorf("failed to prepare statement: %w", err))
	}
	defer stmt.Close()

	for _, p := range products {
		colors, err := json.Marshal(p.Colors)
		if err != nil {
			return persistErr(op, fmt.Errorf("failed to encode colors for product %d: %w", p.ID, err))
		}
		_, err = stmt.ExecContext(ctx,
			p.ID, p.Name, p.NameAr, p.Price, p.Category, p.CategoryAr, p.Image,
			p.Description, p.DescriptionAr, p.Rating, string(colors), p.Brand,
			p.InStock, p.Quantity, p.Slug, p.SEOTitle, p.SEODescription, p.VendorID)
		if err != nil {
			return persistErr(op, fmt.Errorf("failed to upsert product %d: %w", p.ID, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return persistErr(op, fmt.Errorf("failed to commit transaction: %w", err))
	}

	log.Debug().Int("count", len(products)).Str("op", op).Msg("catalog batch committed")
	return nil
}

// GetCachedCatalog returns every product in engine-native order.
func (r *SQLiteCatalogRepository) GetCachedCatalog(ctx context.Context) ([]model.Product, error) {
	return r.query(ctx, "get cached catalog",
		`SELECT `+productColumns+` FROM products`)
}

// GetByCategory returns the products in the given category, backed by the
// category index.
func (r *SQLiteCatalogRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.query(ctx, "get by category",
		`SELECT `+productColumns+` FROM products WHERE category = ?`, category)
}

// GetBySlug returns the product with the given slug, or nil when absent.
func (r *SQLiteCatalogRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = ?`, slug)

	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, persistErr("get by slug", err)
	}
	return p, nil
}

// ClearStore removes every record from the named collection.
func (r *SQLiteCatalogRepository) ClearStore(ctx context.Context, collection string) error {
	switch collection {
	case CollectionProducts, CollectionImages, CollectionSystem:
	default:
		return persistErr("clear store", fmt.Errorf("unknown collection %q", collection))
	}

	if _, err := r.db.sql.ExecContext(ctx, "DELETE FROM "+collection); err != nil {
		return persistErr("clear store", err)
	}

	log.Info().Str("collection", collection).Msg("collection cleared")
	return nil
}

// Count returns the number of products in the collection.
func (r *SQLiteCatalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, persistErr("count products", err)
	}
	return count, nil
}

func (r *SQLiteCatalogRepository) query(ctx context.Context, op, query string, args ...any) ([]model.Product, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, persistErr(op, err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}
	return products, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*model.Product, error) {
	var (
		p      model.Product
		colors string
		slug   sql.NullString
	)
	err := s.Scan(&p.ID, &p.Name, &p.NameAr, &p.Price, &p.Category, &p.CategoryAr,
		&p.Image, &p.Description, &p.DescriptionAr, &p.Rating, &colors, &p.Brand,
		&p.InStock, &p.Quantity, &slug, &p.SEOTitle, &p.SEODescription, &p.VendorID)
	if err != nil {
		return nil, err
	}
	if slug.Valid {
		p.Slug = slug.String
	}
	if colors != "" && colors != "[]" {
		if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
			return nil, fmt.Errorf("failed to decode colors for product %d: %w", p.ID, err)
		}
	}
	return &p, nil
}

// Ensure SQLiteCatalogRepository implements CatalogRepository
var _ CatalogRepository = (*SQLiteCatalogRepository)(nil)

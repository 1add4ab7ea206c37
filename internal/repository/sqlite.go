package repository

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// schemaVersion is bumped only when a new collection or index is introduced.
// Upgrades are strictly additive; existing records are never reshaped.
const schemaVersion = 2

// Collection names. ClearStore only accepts these.
const (
	CollectionProducts = "products"
	CollectionImages   = "images"
	CollectionSystem   = "system_cache"
)

// DB is the shared handle to the embedded store. Opening is cheap to repeat,
// but a single handle is normally created at boot and passed to the
// repositories.
//
// The store assumes a single writer: concurrent writes to the same key are
// resolved last-commit-wins with no conflict detection.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the database file and guarantees the three
// collections and their indexes exist before returning. Any failure here is
// wrapped in ErrStorageUnavailable.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// SQLite only supports 1 writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	log.Debug().Str("path", path).Int("schema_version", schemaVersion).Msg("store opened")
	return &DB{sql: db}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// SchemaVersion reports the on-disk schema version.
func (d *DB) SchemaVersion() (int, error) {
	var v int
	if err := d.sql.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, persistErr("read schema version", err)
	}
	return v, nil
}

// migrate performs the additive schema setup when the stored version is behind.
// Every statement is idempotent, so re-running on an up-to-date file is a no-op.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	if err := createSchema(db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

func createSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS images (
		id TEXT PRIMARY KEY,
		blob BLOB NOT NULL,
		file_name TEXT NOT NULL,
		mime_type TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		name_ar TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		category_ar TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		description_ar TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		colors TEXT NOT NULL DEFAULT '[]',
		brand TEXT NOT NULL DEFAULT '',
		in_stock INTEGER NOT NULL DEFAULT 1,
		quantity INTEGER NOT NULL DEFAULT 0,
		slug TEXT,
		seo_title TEXT NOT NULL DEFAULT '',
		seo_description TEXT NOT NULL DEFAULT '',
		vendor_id INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug ON products(slug);

	CREATE TABLE IF NOT EXISTS system_cache (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);
	`
	_, err := db.Exec(query)
	return err
}

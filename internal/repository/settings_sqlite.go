package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// SQLiteSettingsRepository implements SettingsRepository. Values are stored as
// JSON so callers can persist any serializable payload.
type SQLiteSettingsRepository struct {
	db *DB
}

// NewSQLiteSettingsRepository creates a settings repository over an open handle.
func NewSQLiteSettingsRepository(db *DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{db: db}
}

// SetSetting upserts {key, data, timestamp=now}. The write either fully
// succeeds or fully fails; there are no partial writes.
func (r *SQLiteSettingsRepository) SetSetting(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return persistErr("set setting", err)
	}

	query := `
		INSERT INTO system_cache (key, data, timestamp)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			timestamp = excluded.timestamp`

	if _, err := r.db.sql.ExecContext(ctx, query, key, string(data), time.Now().UnixMilli()); err != nil {
		return persistErr("set setting", err)
	}
	return nil
}

// GetSetting decodes the stored payload into dest and reports presence.
// Read failures are coalesced into absence: preference data has a safe
// default and must never block the app.
func (r *SQLiteSettingsRepository) GetSetting(ctx context.Context, key string, dest any) bool {
	var data string
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT data FROM system_cache WHERE key = ?", key).Scan(&data)
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored setting is not decodable, treating as absent")
		return false
	}
	return true
}

// Ensure SQLiteSettingsRepository implements SettingsRepository
var _ SettingsRepository = (*SQLiteSettingsRepository)(nil)

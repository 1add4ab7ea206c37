package repository

import (
	"context"
	"database/sql"
	"time"

	"ascend-local-store/internal/model"
	"ascend-local-store/pkg/objecturl"
)

// SQLiteImageRepository implements ImageRepository. Blobs are stored verbatim;
// any optimization happens upstream before the save call.
type SQLiteImageRepository struct {
	db   *DB
	urls *objecturl.Registry
}

// NewSQLiteImageRepository creates an image repository over an open handle.
// Loaded blobs are minted as object URLs in the given registry.
func NewSQLiteImageRepository(db *DB, urls *objecturl.Registry) *SQLiteImageRepository {
	return &SQLiteImageRepository{db: db, urls: urls}
}

// SaveImage upserts the blob under the caller-supplied id.
func (r *SQLiteImageRepository) SaveImage(ctx context.Context, blob []byte, id, fileName, mimeType string) (string, error) {
	if fileName == "" {
		fileName = "image.jpg"
	}

	query := `
		INSERT INTO images (id, blob, file_name, mime_type, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			blob = excluded.blob,
			file_name = excluded.file_name,
			mime_type = excluded.mime_type,
			created_at = excluded.created_at`

	_, err := r.db.sql.ExecContext(ctx, query, id, blob, fileName, mimeType, time.Now().UnixMilli())
	if err != nil {
		return "", persistErr("save image", err)
	}
	return id, nil
}

// LoadImage returns an object URL for the stored blob, or "" when absent.
// Ownership of the URL transfers to the caller, who must revoke it.
func (r *SQLiteImageRepository) LoadImage(ctx context.Context, id string) (string, error) {
	rec, err := r.GetImage(ctx, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	return r.urls.Create(rec.Blob, rec.MimeType), nil
}

// GetImage returns the raw record, or nil when absent.
func (r *SQLiteImageRepository) GetImage(ctx context.Context, id string) (*model.ImageRecord, error) {
	query := `SELECT id, blob, file_name, mime_type, created_at FROM images WHERE id = ?`

	var rec model.ImageRecord
	err := r.db.sql.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Blob, &rec.FileName, &rec.MimeType, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, persistErr("get image", err)
	}
	return &rec, nil
}

// Ensure SQLiteImageRepository implements ImageRepository
var _ ImageRepository = (*SQLiteImageRepository)(nil)

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/userctx"
)

// ErrRecordNotFound is returned when a content record does not exist
var ErrRecordNotFound = errors.New("content record not found")

// ContentRepository defines content record database operations
type ContentRepository interface {
	ListByType(ctx context.Context, contentType string) ([]models.ContentRecord, error)
	GetByID(ctx context.Context, contentType, id string) (*models.ContentRecord, error)
	Create(ctx context.Context, record *models.ContentRecord) error
	Update(ctx context.Context, record *models.ContentRecord) error
	Delete(ctx context.Context, contentType, id string) error
}

// contentRepository implements ContentRepository interface
type contentRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContentRecord(s rowScanner) (*models.ContentRecord, error) {
	var (
		record               models.ContentRecord
		data                 string
		createdAt, updatedAt string
	)
	err := s.Scan(&record.ID, &record.ContentType, &data, &record.CreatedBy, &record.UpdatedBy, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Data = json.RawMessage(data)
	if record.CreatedAt, err = models.ParseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = models.ParseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByType retrieves all records of a content type, oldest first
func (r *contentRepository) ListByType(ctx context.Context, contentType string) ([]models.ContentRecord, error) {
	query := `
		SELECT id, content_type, data, created_by, updated_by, created_at, updated_at
		FROM content_records
		WHERE content_type = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to query content records: %w", err)
	}
	defer rows.Close()

	records := []models.ContentRecord{}
	for rows.Next() {
		record, err := scanContentRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content record: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content records: %w", err)
	}

	return records, nil
}

// GetByID retrieves a content record by type and ID
func (r *contentRepository) GetByID(ctx context.Context, contentType, id string) (*models.ContentRecord, error) {
	query := `
		SELECT id, content_type, data, created_by, updated_by, created_at, updated_at
		FROM content_records
		WHERE content_type = ? AND id = ?
	`

	record, err := scanContentRecord(r.db.QueryRowContext(ctx, query, contentType, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", contentType, id, ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content record: %w", err)
	}

	return record, nil
}

// Create inserts a new content record and assigns its ID
func (r *contentRepository) Create(ctx context.Context, record *models.ContentRecord) error {
	query := `
		INSERT INTO content_records (id, content_type, data, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	userID := userctx.GetUserID(ctx)
	now := r.now().UTC()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.ContentType,
		string(record.Data),
		userID,
		userID,
		models.FormatTimestamp(now),
		models.FormatTimestamp(now),
	)
	if err != nil {
		return fmt.Errorf("failed to create content record: %w", err)
	}

	record.CreatedBy = userID
	record.UpdatedBy = userID
	record.CreatedAt = now
	record.UpdatedAt = now
	return nil
}

// Update replaces the data of an existing content record
func (r *contentRepository) Update(ctx context.Context, record *models.ContentRecord) error {
	query := `
		UPDATE content_records
		SET data = ?, updated_by = ?, updated_at = ?
		WHERE content_type = ? AND id = ?
	`

	userID := userctx.GetUserID(ctx)
	now := r.now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		string(record.Data),
		userID,
		models.FormatTimestamp(now),
		record.ContentType,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", record.ContentType, record.ID, ErrRecordNotFound)
	}

	record.UpdatedBy = userID
	record.UpdatedAt = now
	return nil
}

// Delete removes a content record
func (r *contentRepository) Delete(ctx context.Context, contentType, id string) error {
	query := `DELETE FROM content_records WHERE content_type = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, contentType, id)
	if err != nil {
		return fmt.Errorf("failed to delete content record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, ErrRecordNotFound)
	}

	return nil
}

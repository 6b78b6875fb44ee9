package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blogem/content-audit/models"
)

// AuditRepository is the append-only store of audit log entries.
// It exposes no update or delete.
type AuditRepository interface {
	// Insert persists a new entry and returns its store-assigned ID
	Insert(ctx context.Context, entry *models.AuditLogEntry) (int64, error)
	// FindMany returns matching entries, newest first
	FindMany(ctx context.Context, filter models.AuditFilter, limit, offset int) ([]models.AuditLogEntry, error)
	// Count returns how many entries match the filter
	Count(ctx context.Context, filter models.AuditFilter) (int, error)
}

const auditColumns = `id, content_type, record_id, action, user_id, timestamp, payload`

// sqliteAuditRepository implements AuditRepository on SQLite
type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new SQLite audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

func sqliteTimeArg(t time.Time) any {
	return models.FormatTimestamp(t)
}

// Insert appends an entry to the audit log
func (r *sqliteAuditRepository) Insert(ctx context.Context, entry *models.AuditLogEntry) (int64, error) {
	query := `
		INSERT INTO audit_log (content_type, record_id, action, user_id, timestamp, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var payload sql.NullString
	if len(entry.Payload) > 0 {
		payload = sql.NullString{String: string(entry.Payload), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.ContentType,
		entry.RecordID,
		string(entry.Action),
		nullString(entry.User),
		models.FormatTimestamp(entry.Timestamp),
		payload,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return id, nil
}

// FindMany retrieves a page of matching entries ordered by timestamp descending
func (r *sqliteAuditRepository) FindMany(ctx context.Context, filter models.AuditFilter, limit, offset int) ([]models.AuditLogEntry, error) {
	where := buildWhere(filter, questionPlaceholder, sqliteTimeArg)
	query := `SELECT ` + auditColumns + ` FROM audit_log` + where.sql +
		` ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`
	args := append(where.args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0, limit)
	for rows.Next() {
		var (
			entry   models.AuditLogEntry
			action  string
			userID  sql.NullString
			ts      string
			payload sql.NullString
		)

		err := rows.Scan(&entry.ID, &entry.ContentType, &entry.RecordID, &action, &userID, &ts, &payload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		entry.Action = models.Action(action)
		if userID.Valid {
			entry.User = &userID.String
		}
		entry.Timestamp, err = models.ParseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp of audit log entry %d: %w", entry.ID, err)
		}
		if payload.Valid {
			entry.Payload = json.RawMessage(payload.String)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries matching the filter
func (r *sqliteAuditRepository) Count(ctx context.Context, filter models.AuditFilter) (int, error) {
	where := buildWhere(filter, questionPlaceholder, sqliteTimeArg)
	query := `SELECT COUNT(*) FROM audit_log` + where.sql

	var count int
	if err := r.db.QueryRowContext(ctx, query, where.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit log: %w", err)
	}

	return count, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

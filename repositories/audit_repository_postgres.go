package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogem/content-audit/models"
)

const postgresAuditSchema = `
CREATE TABLE IF NOT EXISTS audit_log (
    id           BIGSERIAL PRIMARY KEY,
    content_type TEXT        NOT NULL CHECK (content_type <> ''),
    record_id    TEXT        NOT NULL,
    action       TEXT        NOT NULL CHECK (action IN ('create', 'update', 'delete')),
    user_id      TEXT,
    timestamp    TIMESTAMPTZ NOT NULL,
    payload      JSONB
);
CREATE INDEX IF NOT EXISTS idx_audit_log_content_type_timestamp ON audit_log(content_type, timestamp);
CREATE INDEX IF NOT EXISTS idx_audit_log_user_id ON audit_log(user_id);
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
CREATE INDEX IF NOT EXISTS idx_audit_log_timestamp ON audit_log(timestamp);
`

// PostgresAuditRepository implements AuditRepository on PostgreSQL via pgx
type PostgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository creates a Postgres-backed audit repository
func NewPostgresAuditRepository(pool *pgxpool.Pool) *PostgresAuditRepository {
	return &PostgresAuditRepository{pool: pool}
}

// EnsureSchema creates the audit_log table and its indexes when missing
func (r *PostgresAuditRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresAuditSchema); err != nil {
		return fmt.Errorf("failed to create audit schema: %w", err)
	}
	return nil
}

func postgresTimeArg(t time.Time) any {
	return t.UTC()
}

// Insert appends an entry to the audit log
func (r *PostgresAuditRepository) Insert(ctx context.Context, entry *models.AuditLogEntry) (int64, error) {
	query := `
		INSERT INTO audit_log (content_type, record_id, action, user_id, timestamp, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var payload []byte
	if len(entry.Payload) > 0 {
		payload = entry.Payload
	}

	var id int64
	err := r.pool.QueryRow(ctx, query,
		entry.ContentType,
		entry.RecordID,
		string(entry.Action),
		entry.User,
		entry.Timestamp.UTC(),
		payload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	entry.ID = id
	return id, nil
}

// FindMany retrieves a page of matching entries ordered by timestamp descending
func (r *PostgresAuditRepository) FindMany(ctx context.Context, filter models.AuditFilter, limit, offset int) ([]models.AuditLogEntry, error) {
	where := buildWhere(filter, dollarPlaceholder, postgresTimeArg)
	n := len(where.args)
	query := fmt.Sprintf(`SELECT %s FROM audit_log%s ORDER BY timestamp DESC, id DESC LIMIT $%d OFFSET $%d`,
		auditColumns, where.sql, n+1, n+2)
	args := append(where.args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0, limit)
	for rows.Next() {
		var (
			entry   models.AuditLogEntry
			action  string
			payload []byte
		)
		if err := rows.Scan(&entry.ID, &entry.ContentType, &entry.RecordID, &action, &entry.User, &entry.Timestamp, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entry.Action = models.Action(action)
		entry.Timestamp = entry.Timestamp.UTC()
		if payload != nil {
			entry.Payload = payload
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries matching the filter
func (r *PostgresAuditRepository) Count(ctx context.Context, filter models.AuditFilter) (int, error) {
	where := buildWhere(filter, dollarPlaceholder, postgresTimeArg)

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`+where.sql, where.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit log: %w", err)
	}
	return count, nil
}

package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Content ContentRepository
	Audit   AuditRepository
}

// NewRepositories creates the SQLite-backed repositories.
// Callers may swap Audit for another backend before wiring services.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Content: NewContentRepository(db),
		Audit:   NewAuditRepository(db),
	}
}

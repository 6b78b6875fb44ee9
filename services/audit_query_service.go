package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
)

// AuditQueryService answers filtered, paginated audit log queries
type AuditQueryService interface {
	Query(ctx context.Context, criteria models.QueryCriteria) (*models.AuditLogPage, error)
}

// auditQueryService implements AuditQueryService interface
type auditQueryService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditQueryService creates a new audit query service
func NewAuditQueryService(auditRepo repositories.AuditRepository) AuditQueryService {
	return &auditQueryService{auditRepo: auditRepo}
}

// Query returns one page of matching entries, newest first, with pagination metadata.
// Invalid criteria return models.ValidationErrors without touching the store.
func (s *auditQueryService) Query(ctx context.Context, criteria models.QueryCriteria) (*models.AuditLogPage, error) {
	if err := criteria.Normalize(); err != nil {
		return nil, err
	}

	filter := criteria.Filter()

	var (
		entries []models.AuditLogEntry
		total   int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		total, err = s.auditRepo.Count(egCtx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		entries, err = s.auditRepo.FindMany(egCtx, filter, criteria.PageSize, criteria.Offset())
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	if entries == nil {
		entries = []models.AuditLogEntry{}
	}

	return &models.AuditLogPage{
		Entries: entries,
		Pagination: models.Pagination{
			Page:      criteria.Page,
			PageSize:  criteria.PageSize,
			PageCount: models.PageCount(total, criteria.PageSize),
			Total:     total,
		},
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/events"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/userctx"
)

// ContentService interface defines content record business logic
type ContentService interface {
	List(ctx context.Context, contentType string) ([]models.ContentRecord, error)
	Get(ctx context.Context, contentType, id string) (*models.ContentRecord, error)
	Create(ctx context.Context, form *models.ContentRecordForm) (*models.ContentRecord, error)
	Update(ctx context.Context, id string, form *models.ContentRecordForm) (*models.ContentRecord, error)
	Delete(ctx context.Context, contentType, id string) error
}

// contentService implements ContentService interface
type contentService struct {
	contentRepo repositories.ContentRepository
	publisher   events.Publisher
	log         logrus.FieldLogger
}

// NewContentService creates a new content service. Every committed write is published to publisher.
func NewContentService(contentRepo repositories.ContentRepository, publisher events.Publisher, log logrus.FieldLogger) ContentService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &contentService{
		contentRepo: contentRepo,
		publisher:   publisher,
		log:         log,
	}
}

// List retrieves all records of a content type
func (s *contentService) List(ctx context.Context, contentType string) ([]models.ContentRecord, error) {
	if !models.IsValidContentType(contentType) {
		return nil, fmt.Errorf("%w: invalid content type %q", ErrValidation, contentType)
	}
	return s.contentRepo.ListByType(ctx, contentType)
}

// Get retrieves a content record
func (s *contentService) Get(ctx context.Context, contentType, id string) (*models.ContentRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrValidation)
	}
	return s.contentRepo.GetByID(ctx, contentType, id)
}

// Create creates a new content record with validation
func (s *contentService) Create(ctx context.Context, form *models.ContentRecordForm) (*models.ContentRecord, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, ", "))
	}

	record := &models.ContentRecord{
		ContentType: form.ContentType,
		Data:        form.Data,
	}
	if err := s.contentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create content record: %w", err)
	}

	s.publish(ctx, models.ActionCreate, record)
	return record, nil
}

// Update replaces the data of an existing content record
func (s *contentService) Update(ctx context.Context, id string, form *models.ContentRecordForm) (*models.ContentRecord, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, ", "))
	}

	existing, err := s.Get(ctx, form.ContentType, id)
	if err != nil {
		return nil, err
	}

	existing.Data = form.Data
	if err := s.contentRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update content record: %w", err)
	}

	s.publish(ctx, models.ActionUpdate, existing)
	return existing, nil
}

// Delete removes a content record. The published state is the record as last read.
func (s *contentService) Delete(ctx context.Context, contentType, id string) error {
	existing, err := s.Get(ctx, contentType, id)
	if err != nil {
		return err
	}

	if err := s.contentRepo.Delete(ctx, contentType, id); err != nil {
		return fmt.Errorf("failed to delete content record: %w", err)
	}

	s.publish(ctx, models.ActionDelete, existing)
	return nil
}

// publish emits the committed state of record. Observers cannot affect the mutation outcome.
func (s *contentService) publish(ctx context.Context, action models.Action, record *models.ContentRecord) {
	if s.publisher == nil {
		return
	}

	state, err := json.Marshal(record)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"content_type": record.ContentType,
			"record_id":    record.ID,
			"action":       action,
			"error":        err.Error(),
		}).Warn("failed to encode record state, publishing without payload")
		state = nil
	}

	ev := events.MutationEvent{
		ContentType: record.ContentType,
		RecordID:    record.ID,
		Action:      action,
		State:       state,
	}
	if userID := userctx.GetUserID(ctx); userID != "" {
		ev.ActingUser = &userID
	}

	s.publisher.Publish(ctx, ev)
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/events"
	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
)

// CaptureStatus is the outcome of handling one mutation event
type CaptureStatus int

const (
	Captured CaptureStatus = iota
	CaptureSkipped
	CaptureFailed
)

func (s CaptureStatus) String() string {
	switch s {
	case Captured:
		return "captured"
	case CaptureSkipped:
		return "skipped"
	case CaptureFailed:
		return "failed"
	}
	return fmt.Sprintf("CaptureStatus(%d)", int(s))
}

// CaptureResult reports what the hook did with an event.
// Entry is set when Status is Captured; Err is set when Status is CaptureFailed.
type CaptureResult struct {
	Status CaptureStatus
	Entry  *models.AuditLogEntry
	Reason string
	Err    error
}

var errMalformedEvent = errors.New("malformed mutation event")

// CaptureConfig is the capture section of the service configuration
type CaptureConfig struct {
	Enabled             bool
	ExcludeContentTypes []string
}

// CaptureHook turns committed content mutations into audit log entries
type CaptureHook struct {
	store      repositories.AuditRepository
	enabled    bool
	exclusions *ExclusionFilter
	now        func() time.Time
	log        logrus.FieldLogger
	metrics    *metrics.Metrics

	mu          sync.Mutex
	unsubscribe func()
}

// CaptureOption customises a CaptureHook
type CaptureOption func(*CaptureHook)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) CaptureOption {
	return func(h *CaptureHook) { h.now = now }
}

// WithLogger sets the logger capture outcomes are reported to
func WithLogger(log logrus.FieldLogger) CaptureOption {
	return func(h *CaptureHook) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMetrics counts capture outcomes
func WithMetrics(m *metrics.Metrics) CaptureOption {
	return func(h *CaptureHook) { h.metrics = m }
}

// NewCaptureHook creates a capture hook writing to store
func NewCaptureHook(store repositories.AuditRepository, cfg CaptureConfig, opts ...CaptureOption) *CaptureHook {
	h := &CaptureHook{
		store:      store,
		enabled:    cfg.Enabled,
		exclusions: NewExclusionFilter(cfg.ExcludeContentTypes),
		now:        time.Now,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init subscribes the hook to mutation events. A hook subscribes at most once.
func (h *CaptureHook) Init(sub events.Subscriber) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.unsubscribe != nil {
		return ErrAlreadySubscribed
	}
	h.unsubscribe = sub.Subscribe(h.handle)

	h.log.WithFields(logrus.Fields{
		"enabled":  h.enabled,
		"excluded": h.exclusions.Len(),
	}).Info("audit capture subscribed")
	return nil
}

// Teardown removes the subscription. Calling it again is a no-op.
func (h *CaptureHook) Teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.unsubscribe == nil {
		return
	}
	h.unsubscribe()
	h.unsubscribe = nil
}

// Subscribed reports whether Init has been called without a matching Teardown
func (h *CaptureHook) Subscribed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.unsubscribe != nil
}

// Capture records one mutation event. It never panics on store errors;
// they come back as a CaptureFailed result.
func (h *CaptureHook) Capture(ctx context.Context, ev events.MutationEvent) CaptureResult {
	if !h.enabled {
		return CaptureResult{Status: CaptureSkipped, Reason: "capture disabled"}
	}
	if h.exclusions.Excludes(ev.ContentType) {
		return CaptureResult{Status: CaptureSkipped, Reason: "content type excluded"}
	}
	if err := validateEvent(ev); err != nil {
		return CaptureResult{Status: CaptureFailed, Err: err}
	}

	entry := &models.AuditLogEntry{
		ContentType: ev.ContentType,
		RecordID:    ev.RecordID,
		Action:      ev.Action,
		Timestamp:   h.now().UTC(),
	}
	if ev.ActingUser != nil && *ev.ActingUser != "" {
		user := *ev.ActingUser
		entry.User = &user
	}
	if len(ev.State) > 0 {
		entry.Payload = append(json.RawMessage(nil), ev.State...)
	}

	// the mutation has already committed; a caller going away must not lose its audit entry
	if _, err := h.store.Insert(context.WithoutCancel(ctx), entry); err != nil {
		return CaptureResult{Status: CaptureFailed, Err: fmt.Errorf("%w: %w", ErrStoreFailure, err)}
	}

	return CaptureResult{Status: Captured, Entry: entry}
}

// handle is the bus subscriber. Outcomes go to the log and metrics only.
func (h *CaptureHook) handle(ctx context.Context, ev events.MutationEvent) {
	res := h.Capture(ctx, ev)

	if h.metrics != nil {
		h.metrics.CaptureTotal.WithLabelValues(res.Status.String()).Inc()
	}

	fields := logrus.Fields{
		"content_type": ev.ContentType,
		"record_id":    ev.RecordID,
		"action":       ev.Action,
	}
	switch res.Status {
	case CaptureFailed:
		fields["error"] = res.Err.Error()
		h.log.WithFields(fields).Warn("audit capture failed")
	case CaptureSkipped:
		fields["reason"] = res.Reason
		h.log.WithFields(fields).Debug("audit capture skipped")
	default:
		fields["audit_id"] = res.Entry.ID
		h.log.WithFields(fields).Debug("audit entry recorded")
	}
}

func validateEvent(ev events.MutationEvent) error {
	switch {
	case ev.ContentType == "":
		return fmt.Errorf("%w: empty content type", errMalformedEvent)
	case ev.RecordID == "":
		return fmt.Errorf("%w: empty record id", errMalformedEvent)
	case !ev.Action.Valid():
		return fmt.Errorf("%w: unknown action %q", errMalformedEvent, ev.Action)
	case len(ev.State) > 0 && !json.Valid(ev.State):
		return fmt.Errorf("%w: state is not valid JSON", errMalformedEvent)
	}
	return nil
}

package services

import (
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/events"
	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/repositories"
)

// Services holds all service instances
type Services struct {
	Content    ContentService
	AuditQuery AuditQueryService
	Capture    *CaptureHook
}

// NewServices creates and initializes all service instances.
// The capture hook is constructed but not subscribed; call Capture.Init with the bus.
func NewServices(repos *repositories.Repositories, bus *events.Bus, cfg CaptureConfig, log logrus.FieldLogger, m *metrics.Metrics) *Services {
	// a nil *Bus must stay a nil Publisher
	var publisher events.Publisher
	if bus != nil {
		publisher = bus
	}

	return &Services{
		Content:    NewContentService(repos.Content, publisher, log),
		AuditQuery: NewAuditQueryService(repos.Audit),
		Capture:    NewCaptureHook(repos.Audit, cfg, WithLogger(log), WithMetrics(m)),
	}
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/httpx"
	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/middleware"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/services"
)

// writeJSON renders v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	httpx.WriteJSON(w, status, v)
}

// writeError maps service errors onto the JSON error envelope
func writeError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationFailed, "validation failed", []models.ValidationError(verrs))
	case errors.Is(err, services.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationFailed, err.Error(), nil)
	case errors.Is(err, repositories.ErrRecordNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "record not found", nil)
	default:
		log.WithField("request_id", middleware.RequestIDFromContext(r.Context())).
			WithError(err).Error("request failed")
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal server error", nil)
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Audit   *AuditController
	Content *ContentController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, log logrus.FieldLogger, m *metrics.Metrics) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(log),
		Audit:   NewAuditController(services, log, m),
		Content: NewContentController(services, log),
	}
}

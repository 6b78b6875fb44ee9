package controllers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/services"
)

// AuditController serves the audit log read API
type AuditController struct {
	services *services.Services
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, log logrus.FieldLogger, m *metrics.Metrics) *AuditController {
	return &AuditController{
		services: services,
		log:      log,
		metrics:  m,
	}
}

// List handles GET /audit-logs
func (c *AuditController) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := models.ParseQueryCriteria(r.URL.Query())
	if err != nil {
		c.count("invalid")
		writeError(w, r, c.log, err)
		return
	}

	page, err := c.services.AuditQuery.Query(r.Context(), criteria)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.count("invalid")
		} else {
			c.count("error")
		}
		writeError(w, r, c.log, err)
		return
	}

	c.count("ok")
	writeJSON(w, http.StatusOK, page)
}

func (c *AuditController) count(outcome string) {
	if c.metrics != nil {
		c.metrics.QueriesTotal.WithLabelValues(outcome).Inc()
	}
}

package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/httpx"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/services"
)

// maxContentBody bounds request bodies for content writes
const maxContentBody = 1 << 20

// ContentController handles content record requests
type ContentController struct {
	services *services.Services
	log      logrus.FieldLogger
}

// NewContentController creates a new content controller
func NewContentController(services *services.Services, log logrus.FieldLogger) *ContentController {
	return &ContentController{
		services: services,
		log:      log,
	}
}

// Index handles GET /content/{contentType}
func (c *ContentController) Index(w http.ResponseWriter, r *http.Request) {
	records, err := c.services.Content.List(r.Context(), chi.URLParam(r, "contentType"))
	if err != nil {
		writeError(w, r, c.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// Show handles GET /content/{contentType}/{id}
func (c *ContentController) Show(w http.ResponseWriter, r *http.Request) {
	record, err := c.services.Content.Get(r.Context(), chi.URLParam(r, "contentType"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, c.log, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Create handles POST /content/{contentType}
func (c *ContentController) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := c.decodeForm(w, r)
	if !ok {
		return
	}

	record, err := c.services.Content.Create(r.Context(), form)
	if err != nil {
		writeError(w, r, c.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// Update handles PUT /content/{contentType}/{id}
func (c *ContentController) Update(w http.ResponseWriter, r *http.Request) {
	form, ok := c.decodeForm(w, r)
	if !ok {
		return
	}

	record, err := c.services.Content.Update(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		writeError(w, r, c.log, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /content/{contentType}/{id}
func (c *ContentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Content.Delete(r.Context(), chi.URLParam(r, "contentType"), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, c.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *ContentController) decodeForm(w http.ResponseWriter, r *http.Request) (*models.ContentRecordForm, bool) {
	form := &models.ContentRecordForm{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContentBody)).Decode(form); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "request body must be a JSON object with a data field", nil)
		return nil, false
	}
	form.ContentType = chi.URLParam(r, "contentType")
	return form, true
}

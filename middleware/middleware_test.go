package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/userctx"
)

// countingHandler stands in for the query path; calls counts store accesses
type countingHandler struct {
	calls     int
	principal *models.Principal
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.calls++
	h.principal = userctx.GetPrincipal(r.Context())
	w.WriteHeader(http.StatusOK)
}

type stubChecker struct {
	allowed bool
	err     error
}

func (s stubChecker) HasPermission(context.Context, *models.Principal, string) (bool, error) {
	return s.allowed, s.err
}

type stubTokens map[string]*models.Principal

func (s stubTokens) Parse(token string) (*models.Principal, error) {
	if p, ok := s[token]; ok {
		return p, nil
	}
	return nil, errors.New("invalid token")
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func withPrincipal(p *models.Principal) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/audit-logs", nil)
	if p != nil {
		r = r.WithContext(userctx.WithPrincipal(r.Context(), p))
	}
	return r
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

func TestRequirePermission(t *testing.T) {
	reader := &models.Principal{ID: "u1", Permissions: []string{models.PermissionReadAuditLogs}}
	editor := &models.Principal{ID: "u2", Permissions: []string{"write_content"}}

	tests := []struct {
		name      string
		principal *models.Principal
		checker   PermissionChecker
		status    int
		code      string
		calls     int
	}{
		{"no principal", nil, ClaimsPermissionChecker{}, http.StatusUnauthorized, "unauthenticated", 0},
		{"missing capability", editor, ClaimsPermissionChecker{}, http.StatusForbidden, "forbidden", 0},
		{"granted", reader, ClaimsPermissionChecker{}, http.StatusOK, "", 1},
		{"checker denies", reader, stubChecker{allowed: false}, http.StatusForbidden, "forbidden", 0},
		{"checker fails", reader, stubChecker{err: errors.New("rbac down")}, http.StatusInternalServerError, "internal_error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &countingHandler{}
			h := RequirePermission(tt.checker, models.PermissionReadAuditLogs)(next)

			rec := serve(h, withPrincipal(tt.principal))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.calls, next.calls)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, rec))
			}
		})
	}
}

func TestRequirePermission_PassesRequestUnchanged(t *testing.T) {
	reader := &models.Principal{ID: "u1", Permissions: []string{models.PermissionReadAuditLogs}}
	next := &countingHandler{}

	serve(RequirePermission(ClaimsPermissionChecker{}, models.PermissionReadAuditLogs)(next), withPrincipal(reader))

	assert.Same(t, reader, next.principal)
}

func TestRequireAuth(t *testing.T) {
	next := &countingHandler{}
	h := RequireAuth(next)

	rec := serve(h, withPrincipal(nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, next.calls)

	rec = serve(h, withPrincipal(&models.Principal{ID: "u1"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, next.calls)
}

func TestAuthenticate(t *testing.T) {
	tokenUser := &models.Principal{ID: "token-user"}
	sessionUser := &models.Principal{ID: "session-user"}
	tokens := stubTokens{"good": tokenUser}
	fromSession := func(*http.Request) *models.Principal { return sessionUser }
	noSession := func(*http.Request) *models.Principal { return nil }

	tests := []struct {
		name    string
		header  string
		session SessionLookup
		want    *models.Principal
	}{
		{"bearer token", "Bearer good", noSession, tokenUser},
		{"lowercase scheme", "bearer good", noSession, tokenUser},
		{"bearer wins over session", "Bearer good", fromSession, tokenUser},
		{"invalid token is anonymous", "Bearer bad", fromSession, nil},
		{"session", "", fromSession, sessionUser},
		{"other scheme falls back to session", "Basic abc", fromSession, sessionUser},
		{"anonymous", "", noSession, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &countingHandler{}
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			rec := serve(Authenticate(tokens, tt.session)(next), r)

			assert.Equal(t, http.StatusOK, rec.Code, "authenticate never rejects")
			assert.Equal(t, 1, next.calls)
			assert.Equal(t, tt.want, next.principal)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/content/article", nil))

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/content/article", entry.Data["path"])

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(RequestIDHeader, "given-id")
	rec = serve(h, r)
	assert.Equal(t, "given-id", rec.Header().Get(RequestIDHeader))
}

func TestHTTPMetrics_UsesRoutePattern(t *testing.T) {
	m := metrics.NewNop()
	r := chi.NewRouter()
	r.Use(HTTPMetrics(m))
	r.Get("/content/{contentType}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/content/article", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/content/page", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/content/{contentType}", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", "GET", "404")))
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/config"
	"github.com/blogem/content-audit/controllers"
	"github.com/blogem/content-audit/httpx"
	"github.com/blogem/content-audit/metrics"
	authmiddleware "github.com/blogem/content-audit/middleware"
	"github.com/blogem/content-audit/models"
)

// routerDeps is everything setupRouter mounts
type routerDeps struct {
	ctrl    *controllers.Controllers
	metrics *metrics.Metrics
	log     logrus.FieldLogger
	server  config.ServerConfig

	// nil disables bearer tokens
	tokens authmiddleware.TokenParser
	// nil disables the OIDC login routes
	auth authenticator.Provider
}

// setupRouter configures all routes
func setupRouter(deps routerDeps) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(authmiddleware.RequestLogger(deps.log))
	r.Use(authmiddleware.HTTPMetrics(deps.metrics))

	if len(deps.server.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.server.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", authmiddleware.RequestIDHeader},
			ExposedHeaders:   []string{authmiddleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "content_audit_session",
		Secure:         deps.server.UseHTTPS,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.Authenticate(deps.tokens, authmiddleware.SessionPrincipal))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "content-audit"})
	})
	r.Method(http.MethodGet, "/metrics", deps.metrics.Handler())

	if deps.auth != nil {
		r.Get("/login", deps.ctrl.Auth.Login(deps.auth))
		r.Get("/callback", deps.ctrl.Auth.Callback(deps.auth))
		r.Get("/logout", deps.ctrl.Auth.Logout)
	}

	// AUDIT LOG QUERIES (read_audit_logs capability required)
	r.With(authmiddleware.RequirePermission(authmiddleware.ClaimsPermissionChecker{}, models.PermissionReadAuditLogs)).
		Get("/audit-logs", deps.ctrl.Audit.List)

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Route("/content/{contentType}", func(r chi.Router) {
			r.Get("/", deps.ctrl.Content.Index)
			r.Post("/", deps.ctrl.Content.Create)
			r.Get("/{id}", deps.ctrl.Content.Show)
			r.Put("/{id}", deps.ctrl.Content.Update)
			r.Delete("/{id}", deps.ctrl.Content.Delete)
		})
	})

	return r, nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/config"
	"github.com/blogem/content-audit/controllers"
	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/events"
	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/services"
)

// app holds every long-lived dependency of the server
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	db      *sql.DB
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
	bus     *events.Bus
	svcs    *services.Services
	ctrl    *controllers.Controllers
	tokens  *authenticator.TokenManager
	auth    authenticator.Provider
}

// openStores opens the content database and, when configured, the Postgres audit store
func openStores(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*sql.DB, *pgxpool.Pool, *repositories.Repositories, error) {
	db, err := database.InitializeDatabase(cfg.Store.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := repositories.NewRepositories(db)
	if cfg.Store.AuditDriver != config.DriverPostgres {
		return db, nil, repos, nil
	}

	pool, err := database.NewPool(ctx, cfg.Store.AuditDatabaseURL)
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	pgRepo := repositories.NewPostgresAuditRepository(pool)
	if err := pgRepo.EnsureSchema(ctx); err != nil {
		pool.Close()
		db.Close()
		return nil, nil, nil, err
	}
	repos.Audit = pgRepo
	log.WithField("driver", config.DriverPostgres).Info("audit store ready")

	return db, pool, repos, nil
}

// newApp wires configuration, stores, services and controllers.
// The capture hook is subscribed to the bus before newApp returns.
func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger, reg prometheus.Registerer) (*app, error) {
	db, pool, repos, err := openStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		db:      db,
		pool:    pool,
		metrics: metrics.New(reg),
		bus:     events.NewBus(log),
	}

	a.svcs = services.NewServices(repos, a.bus, services.CaptureConfig{
		Enabled:             cfg.Audit.Enabled,
		ExcludeContentTypes: cfg.Audit.ExcludeContentTypes,
	}, log, a.metrics)
	if err := a.svcs.Capture.Init(a.bus); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register capture hook: %w", err)
	}

	if cfg.Auth.JWTSecret != "" {
		a.tokens = authenticator.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	} else {
		log.Warn("JWT_SECRET not set, bearer tokens are disabled")
	}

	if cfg.Auth.OIDCEnabled() {
		a.auth, err = authenticator.NewOIDCProvider(ctx, authenticator.OIDCConfig{
			Domain:       cfg.Auth.OIDCDomain,
			ClientID:     cfg.Auth.OIDCClientID,
			ClientSecret: cfg.Auth.OIDCClientSecret,
			CallbackURL:  cfg.Auth.OIDCCallbackURL,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize OIDC provider: %w", err)
		}
	}

	a.ctrl = controllers.NewControllers(a.svcs, log, a.metrics)

	log.WithFields(logrus.Fields{
		"audit_enabled":  cfg.Audit.Enabled,
		"excluded_types": len(cfg.Audit.ExcludeContentTypes),
		"audit_driver":   cfg.Store.AuditDriver,
		"oidc":           a.auth != nil,
	}).Info("application initialized")

	return a, nil
}

// routerDeps converts the app into the router's inputs
func (a *app) routerDeps() routerDeps {
	deps := routerDeps{
		ctrl:    a.ctrl,
		metrics: a.metrics,
		log:     a.log,
		server:  a.cfg.Server,
		auth:    a.auth,
	}
	if a.tokens != nil {
		deps.tokens = a.tokens
	}
	return deps
}

// Close detaches the capture hook and releases the stores
func (a *app) Close() {
	if a.svcs != nil {
		a.svcs.Capture.Teardown()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.WithError(err).Warn("failed to close database")
		}
	}
}

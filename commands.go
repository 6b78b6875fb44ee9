package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/config"
	"github.com/blogem/content-audit/logging"
	"github.com/blogem/content-audit/models"
)

// newRootCommand builds the command tree. Running the binary with no
// subcommand starts the server.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content-audit",
		Short: "Content service with an append-only audit log",
		Long: `content-audit serves content records over HTTP and records every
create, update and delete in an append-only audit log that callers holding
the read_audit_logs permission can query at GET /audit-logs.

Configuration is read from the environment (and an optional .env file).

Quick start:
  content-audit migrate                                # Create the schema
  content-audit token --sub alice -p read_audit_logs   # Issue a bearer token
  content-audit serve                                  # Start the HTTP server`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newTokenCommand())

	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token for an API client",
		Long: `Issue an HS256 bearer token signed with JWT_SECRET.

Examples:
  # Token for an auditor
  content-audit token --sub auditor-1 --permission read_audit_logs

  # Token for an editor with no audit access
  content-audit token --sub editor-7 --email editor@example.com`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}

	cmd.Flags().String("sub", "", "Subject (user id) of the token")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().StringSliceP("permission", "p", nil, "Permission to grant (repeatable)")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}

// loadConfig reads configuration and builds the process logger
func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.Log.Level, cfg.Log.Format), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return err
	}
	defer a.Close()

	r, err := setupRouter(a.routerDeps())
	if err != nil {
		log.WithError(err).Error("failed to setup router")
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"port":     cfg.Server.Port,
			"database": cfg.Store.DBPath,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped with error")
		return err
	}
	log.Info("server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	db, pool, _, err := openStores(cmd.Context(), cfg, log)
	if err != nil {
		log.WithError(err).Error("migration failed")
		return err
	}
	if pool != nil {
		pool.Close()
	}
	if err := db.Close(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set to issue tokens")
	}

	p := &models.Principal{}
	p.ID, _ = cmd.Flags().GetString("sub")
	p.Email, _ = cmd.Flags().GetString("email")
	p.Permissions, _ = cmd.Flags().GetStringSlice("permission")

	tm := authenticator.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, expires, err := tm.Issue(p)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expires.UTC().Format(time.RFC3339))
	return nil
}

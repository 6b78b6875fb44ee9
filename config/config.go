package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers for the audit log
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Store  StoreConfig
	Auth   AuthConfig
	Audit  AuditConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string
	Env                string
	UseHTTPS           bool
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// LogConfig selects log verbosity and output format
type LogConfig struct {
	Level  string
	Format string
}

// StoreConfig locates the content database and the audit store
type StoreConfig struct {
	DBPath           string
	AuditDriver      string
	AuditDatabaseURL string
}

// AuthConfig holds bearer token and OpenID Connect settings
type AuthConfig struct {
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	OIDCDomain       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
}

// AuditConfig is loaded once at start and immutable thereafter
type AuditConfig struct {
	Enabled             bool
	ExcludeContentTypes []string
}

// auditFile is the YAML shape of AUDIT_CONFIG_FILE
type auditFile struct {
	Audit struct {
		Enabled             *bool    `yaml:"enabled"`
		ExcludeContentTypes []string `yaml:"excludeContentTypes"`
	} `yaml:"audit"`
}

// OIDCEnabled reports whether the login flow is configured
func (a AuthConfig) OIDCEnabled() bool {
	return a.OIDCDomain != ""
}

// Load reads an optional .env file, the environment, and the optional
// YAML audit file named by AUDIT_CONFIG_FILE. Environment variables win.
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	audit, err := loadAuditConfig(getEnv("AUDIT_CONFIG_FILE", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			Env:                getEnv("APP_ENV", "dev"),
			UseHTTPS:           getEnvBool("USE_HTTPS", false),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", nil),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Store: StoreConfig{
			DBPath:           getEnv("DB_PATH", "content_audit.db"),
			AuditDriver:      strings.ToLower(getEnv("AUDIT_STORE_DRIVER", DriverSQLite)),
			AuditDatabaseURL: getEnv("AUDIT_DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			JWTIssuer:        getEnv("JWT_ISSUER", "content-audit"),
			TokenTTL:         getEnvDuration("JWT_TTL", time.Hour),
			OIDCDomain:       getEnv("OIDC_DOMAIN", ""),
			OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
			OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
			OIDCCallbackURL:  getEnv("OIDC_CALLBACK_URL", ""),
		},
		Audit: audit,
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
		if cfg.Server.Env == "prod" || cfg.Server.Env == "production" {
			cfg.Log.Format = "json"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAuditConfig applies defaults, then the YAML file, then env overrides
func loadAuditConfig(path string) (AuditConfig, error) {
	cfg := AuditConfig{Enabled: true}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return AuditConfig{}, fmt.Errorf("failed to read audit config %s: %w", path, err)
		}
		var file auditFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return AuditConfig{}, fmt.Errorf("failed to parse audit config %s: %w", path, err)
		}
		if file.Audit.Enabled != nil {
			cfg.Enabled = *file.Audit.Enabled
		}
		cfg.ExcludeContentTypes = file.Audit.ExcludeContentTypes
	}

	cfg.Enabled = getEnvBool("AUDIT_ENABLED", cfg.Enabled)
	cfg.ExcludeContentTypes = getEnvList("AUDIT_EXCLUDE_CONTENT_TYPES", cfg.ExcludeContentTypes)

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.AuditDriver {
	case DriverSQLite:
		if c.Store.DBPath == "" {
			return errors.New("DB_PATH is required")
		}
	case DriverPostgres:
		if c.Store.AuditDatabaseURL == "" {
			return errors.New("AUDIT_DATABASE_URL is required when AUDIT_STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown AUDIT_STORE_DRIVER %q: must be %s or %s", c.Store.AuditDriver, DriverSQLite, DriverPostgres)
	}

	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	if c.Auth.OIDCEnabled() && (c.Auth.OIDCClientID == "" || c.Auth.OIDCClientSecret == "" || c.Auth.OIDCCallbackURL == "") {
		return errors.New("OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL are required when OIDC_DOMAIN is set")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable. A variable set to an empty
// string is treated as unset.
func getEnvList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

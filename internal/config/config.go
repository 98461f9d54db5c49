// Package config loads the portal's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"council-portal-api/internal/cache"
	"council-portal-api/internal/content"
	"council-portal-api/internal/logging"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheBolt   = "bolt"
)

// Config is the full set of runtime settings.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Remote   RemoteConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig locates the content database.
type DatabaseConfig struct {
	Path  string
	Debug bool
}

// CacheConfig selects and sizes the read cache.
type CacheConfig struct {
	Backend  string
	Path     string
	Prefix   string
	TTL      time.Duration
	MaxBytes int
}

// RemoteConfig bounds calls to the data store.
type RemoteConfig struct {
	Timeout       time.Duration
	CoalesceReads bool
}

// AuthConfig holds token settings and the single admin account.
type AuthConfig struct {
	Secret            string
	Issuer            string
	Audience          string
	TokenTTL          time.Duration
	AdminUser         string
	AdminPasswordHash string
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8008",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "council-portal.db",
		},
		Cache: CacheConfig{
			Backend: CacheBolt,
			Path:    "council-portal-cache.db",
			Prefix:  cache.DefaultPrefix,
			TTL:     cache.DefaultTTL,
		},
		Remote: RemoteConfig{
			Timeout:       content.DefaultRemoteTimeout,
			CoalesceReads: true,
		},
		Auth: AuthConfig{
			Secret:    "development-insecure-secret-change-me",
			Issuer:    "council-portal-api",
			Audience:  "council-portal-admin",
			TokenTTL:  24 * time.Hour,
			AdminUser: "admin",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheBolt:
		if c.Cache.Path == "" {
			return errors.New("cache.path is required for the bolt backend")
		}
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q", CacheMemory, CacheBolt, c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be > 0")
	}
	if c.Cache.MaxBytes < 0 {
		return errors.New("cache.max_bytes must be >= 0")
	}
	if c.Remote.Timeout <= 0 {
		return errors.New("remote.timeout must be > 0")
	}
	if c.Auth.Secret == "" {
		return errors.New("auth.secret is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Load starts from Defaults, applies any variables getenv knows, and
// validates the result. Pass os.Getenv in production.
func Load(getenv func(string) string) (Config, error) {
	cfg := Defaults()
	l := loader{getenv: getenv}

	l.str("PORTAL_ADDR", &cfg.Server.Addr)
	l.duration("PORTAL_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	l.str("PORTAL_DB_PATH", &cfg.Database.Path)
	l.boolean("PORTAL_DB_DEBUG", &cfg.Database.Debug)
	l.str("PORTAL_CACHE_BACKEND", &cfg.Cache.Backend)
	l.str("PORTAL_CACHE_PATH", &cfg.Cache.Path)
	l.str("PORTAL_CACHE_PREFIX", &cfg.Cache.Prefix)
	l.duration("PORTAL_CACHE_TTL", &cfg.Cache.TTL)
	l.integer("PORTAL_CACHE_MAX_BYTES", &cfg.Cache.MaxBytes)
	l.duration("PORTAL_REMOTE_TIMEOUT", &cfg.Remote.Timeout)
	l.boolean("PORTAL_COALESCE_READS", &cfg.Remote.CoalesceReads)
	l.str("JWT_SECRET", &cfg.Auth.Secret)
	l.str("JWT_ISSUER", &cfg.Auth.Issuer)
	l.str("JWT_AUDIENCE", &cfg.Auth.Audience)
	l.duration("JWT_TTL", &cfg.Auth.TokenTTL)
	l.str("PORTAL_ADMIN_USER", &cfg.Auth.AdminUser)
	l.str("PORTAL_ADMIN_PASSWORD_HASH", &cfg.Auth.AdminPasswordHash)
	l.str("PORTAL_LOG_LEVEL", &cfg.Log.Level)

	if len(l.errs) > 0 {
		return Config{}, errors.Join(l.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type loader struct {
	getenv func(string) string
	errs   []error
}

func (l *loader) lookup(key string) (string, bool) {
	v := strings.TrimSpace(l.getenv(key))
	return v, v != ""
}

func (l *loader) str(key string, dst *string) {
	if v, ok := l.lookup(key); ok {
		*dst = v
	}
}

func (l *loader) duration(key string, dst *time.Duration) {
	v, ok := l.lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func (l *loader) boolean(key string, dst *bool) {
	v, ok := l.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func (l *loader) integer(key string, dst *int) {
	v, ok := l.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

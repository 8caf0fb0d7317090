// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/device-quote/pkg/estimate"
)

// Store backends.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendPebble    = "pebble"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Store         StoreConfig         `yaml:"store"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Quote         QuoteConfig         `yaml:"quote"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig selects the pricing store backend.
type StoreConfig struct {
	Backend   string          `yaml:"backend"` // postgres, firestore, pebble
	Postgres  DatabaseConfig  `yaml:"postgres"`
	Firestore FirestoreConfig `yaml:"firestore"`
	Pebble    PebbleConfig    `yaml:"pebble"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
	if d.PoolSize > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", d.PoolSize)
	}
	return dsn
}

// FirestoreConfig defines Cloud Firestore settings.
type FirestoreConfig struct {
	ProjectID    string        `yaml:"project_id"`
	EmulatorHost string        `yaml:"emulator_host"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
}

// PebbleConfig defines the embedded store settings.
type PebbleConfig struct {
	Dir string `yaml:"dir"`
}

// CatalogConfig points at an optional catalog file. Empty means the
// catalog compiled into the binary.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// QuoteConfig tunes the quote engine.
type QuoteConfig struct {
	StoreTimeout time.Duration   `yaml:"store_timeout"`
	Currency     string          `yaml:"currency"`
	AuditWorkers int             `yaml:"audit_workers"`
	Policy       estimate.Policy `yaml:"policy"`
}

// RateLimitConfig defines the quote endpoint limiter.
type RateLimitConfig struct {
	Enabled   *bool   `yaml:"enabled"` // default: true
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// IsEnabled reports whether the limiter is on.
func (r *RateLimitConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	AuditInterval time.Duration `yaml:"audit_interval"`
	AuditTimeout  time.Duration `yaml:"audit_timeout"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TracingConfig defines the OTLP trace exporter. Tracing is off when
// Endpoint is empty.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
}

// LoadEnvFile loads KEY=value pairs from path into the process
// environment. A missing file is not an error; variables already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse is Load for in-memory YAML.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStoreDefaults(&cfg.Store)
	applyQuoteDefaults(&cfg.Quote)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyScheduleDefaults(&cfg.Schedule)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyStoreDefaults(s *StoreConfig) {
	if s.Backend == "" {
		s.Backend = BackendPostgres
	}

	d := &s.Postgres
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}

	if s.Firestore.DialTimeout == 0 {
		s.Firestore.DialTimeout = 10 * time.Second
	}
	if s.Pebble.Dir == "" {
		s.Pebble.Dir = "data/pricing"
	}
}

func applyQuoteDefaults(q *QuoteConfig) {
	if q.StoreTimeout == 0 {
		q.StoreTimeout = 3 * time.Second
	}
	if q.Currency == "" {
		q.Currency = "EUR"
	}
	if q.AuditWorkers == 0 {
		q.AuditWorkers = 4
	}
	q.Policy = q.Policy.WithDefaults()
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 20
	}
	if r.Burst == 0 {
		r.Burst = 40
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.AuditInterval == 0 {
		s.AuditInterval = 6 * time.Hour
	}
	if s.AuditTimeout == 0 {
		s.AuditTimeout = 5 * time.Minute
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "device-quote"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Store.Backend {
	case BackendPostgres:
		d := cfg.Store.Postgres
		if d.Host == "" {
			errs = append(errs, errors.New("store.postgres.host is required when backend is postgres"))
		}
		if d.Name == "" {
			errs = append(errs, errors.New("store.postgres.name is required when backend is postgres"))
		}
		if d.User == "" {
			errs = append(errs, errors.New("store.postgres.user is required when backend is postgres"))
		}
	case BackendFirestore:
		if cfg.Store.Firestore.ProjectID == "" {
			errs = append(
				errs,
				errors.New("store.firestore.project_id is required when backend is firestore"),
			)
		}
	case BackendPebble:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"store.backend must be one of: postgres, firestore, pebble (got %q)",
				cfg.Store.Backend,
			),
		)
	}

	if cfg.Quote.StoreTimeout < 0 {
		errs = append(errs, errors.New("quote.store_timeout must not be negative"))
	}
	if cfg.Quote.AuditWorkers < 0 {
		errs = append(errs, errors.New("quote.audit_workers must not be negative"))
	}
	if f := cfg.Quote.Policy.NotWorkingFactor; f < 0 || f > 1 {
		errs = append(errs, fmt.Errorf("quote.policy.not_working_factor must be within [0,1] (got %v)", f))
	}
	if f := cfg.Quote.Policy.ScreenScratchFactor; f < 0 || f > 1 {
		errs = append(errs, fmt.Errorf("quote.policy.screen_scratch_factor must be within [0,1] (got %v)", f))
	}

	if cfg.RateLimit.PerSecond < 0 || cfg.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate_limit.per_second and rate_limit.burst must not be negative"))
	}

	if cfg.Schedule.AuditInterval < time.Minute {
		errs = append(errs, fmt.Errorf("schedule.audit_interval must be at least 1m (got %s)", cfg.Schedule.AuditInterval))
	}

	if d := cfg.Notifications.Discord; d.Enabled {
		if u, err := url.Parse(d.WebhookURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(
				errs,
				errors.New("notifications.discord.webhook_url must be an absolute URL when discord is enabled"),
			)
		}
	}

	if r := cfg.Tracing.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be within [0,1] (got %v)", r))
	}

	return errors.Join(errs...)
}

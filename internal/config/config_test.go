package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPostgres = `
store:
  backend: postgres
  postgres:
    host: localhost
    name: quotes
    user: quoter
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalPostgres,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, BackendPostgres, cfg.Store.Backend)
				assert.Equal(t, "localhost", cfg.Store.Postgres.Host)
				assert.Equal(t, "quotes", cfg.Store.Postgres.Name)
				assert.Equal(t, "quoter", cfg.Store.Postgres.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalPostgres,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 5432, cfg.Store.Postgres.Port)
				assert.Equal(t, "disable", cfg.Store.Postgres.SSLMode)
				assert.Equal(t, 10, cfg.Store.Postgres.PoolSize)
				assert.Equal(t, 10*time.Second, cfg.Store.Firestore.DialTimeout)
				assert.Equal(t, "data/pricing", cfg.Store.Pebble.Dir)
				assert.Empty(t, cfg.Catalog.Path)
				assert.Equal(t, 3*time.Second, cfg.Quote.StoreTimeout)
				assert.Equal(t, "EUR", cfg.Quote.Currency)
				assert.Equal(t, 4, cfg.Quote.AuditWorkers)
				assert.InDelta(t, 150.0, cfg.Quote.Policy.FaceIDPenalty, 0.001)
				assert.InDelta(t, 0.5, cfg.Quote.Policy.NotWorkingFactor, 0.001)
				assert.True(t, cfg.RateLimit.IsEnabled())
				assert.InDelta(t, 20.0, cfg.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 40, cfg.RateLimit.Burst)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.AuditInterval)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.AuditTimeout)
				assert.False(t, cfg.Notifications.Discord.Enabled)
				assert.Empty(t, cfg.Tracing.Endpoint)
				assert.Equal(t, "device-quote", cfg.Tracing.ServiceName)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
store:
  postgres:
    host: localhost
    name: quotes
    user: quoter
    password: "${TEST_DQ_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DQ_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Store.Postgres.Password)
			},
		},
		{
			name: "missing required postgres host",
			yaml: `
store:
  postgres:
    name: quotes
    user: quoter
`,
			wantErr: "store.postgres.host is required when backend is postgres",
		},
		{
			name: "missing required postgres name and user",
			yaml: `
store:
  postgres:
    host: localhost
`,
			wantErr: "store.postgres.name is required when backend is postgres\nstore.postgres.user is required",
		},
		{
			name: "invalid store backend",
			yaml: `
store:
  backend: mysql
`,
			wantErr: `store.backend must be one of: postgres, firestore, pebble (got "mysql")`,
		},
		{
			name: "firestore backend missing project",
			yaml: `
store:
  backend: firestore
`,
			wantErr: "store.firestore.project_id is required when backend is firestore",
		},
		{
			name: "firestore backend with emulator",
			yaml: `
store:
  backend: firestore
  firestore:
    project_id: demo-quotes
    emulator_host: localhost:8681
    dial_timeout: 2s
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "demo-quotes", cfg.Store.Firestore.ProjectID)
				assert.Equal(t, "localhost:8681", cfg.Store.Firestore.EmulatorHost)
				assert.Equal(t, 2*time.Second, cfg.Store.Firestore.DialTimeout)
			},
		},
		{
			name: "pebble backend needs nothing else",
			yaml: `
store:
  backend: pebble
  pebble:
    dir: /var/lib/device-quote
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, BackendPebble, cfg.Store.Backend)
				assert.Equal(t, "/var/lib/device-quote", cfg.Store.Pebble.Dir)
			},
		},
		{
			name: "discord enabled without url",
			yaml: minimalPostgres + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url must be an absolute URL",
		},
		{
			name: "audit interval too short",
			yaml: minimalPostgres + `
schedule:
  audit_interval: 10s
`,
			wantErr: "schedule.audit_interval must be at least 1m (got 10s)",
		},
		{
			name: "policy factor out of range",
			yaml: minimalPostgres + `
quote:
  policy:
    not_working_factor: 1.5
`,
			wantErr: "quote.policy.not_working_factor must be within [0,1] (got 1.5)",
		},
		{
			name: "sample ratio out of range",
			yaml: minimalPostgres + `
tracing:
  sample_ratio: 2
`,
			wantErr: "tracing.sample_ratio must be within [0,1]",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
  shutdown_timeout: 20s
store:
  backend: postgres
  postgres:
    host: db.example.com
    port: 5433
    name: quotes_prod
    user: admin
    password: pass
    sslmode: require
    pool_size: 20
catalog:
  path: /etc/device-quote/devices.yaml
quote:
  store_timeout: 1500ms
  currency: GBP
  audit_workers: 8
  policy:
    face_id_penalty: 120
    preferred_condition: good
rate_limit:
  enabled: false
  per_second: 5
  burst: 10
schedule:
  audit_interval: 1h
  audit_timeout: 2m
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
tracing:
  endpoint: otel-collector:4317
  insecure: true
  service_name: quotes
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "db.example.com", cfg.Store.Postgres.Host)
				assert.Equal(t, 5433, cfg.Store.Postgres.Port)
				assert.Equal(t, "require", cfg.Store.Postgres.SSLMode)
				assert.Equal(t, 20, cfg.Store.Postgres.PoolSize)
				assert.Equal(t, "/etc/device-quote/devices.yaml", cfg.Catalog.Path)
				assert.Equal(t, 1500*time.Millisecond, cfg.Quote.StoreTimeout)
				assert.Equal(t, "GBP", cfg.Quote.Currency)
				assert.Equal(t, 8, cfg.Quote.AuditWorkers)
				assert.InDelta(t, 120.0, cfg.Quote.Policy.FaceIDPenalty, 0.001)
				assert.Equal(t, "good", cfg.Quote.Policy.PreferredCondition)
				assert.InDelta(t, 100.0, cfg.Quote.Policy.ScreenRepairFallback, 0.001)
				assert.False(t, cfg.RateLimit.IsEnabled())
				assert.Equal(t, 10, cfg.RateLimit.Burst)
				assert.Equal(t, time.Hour, cfg.Schedule.AuditInterval)
				assert.Equal(t, 2*time.Minute, cfg.Schedule.AuditTimeout)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "https://discord.com/api/webhooks/123", cfg.Notifications.Discord.WebhookURL)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.True(t, cfg.Tracing.Insecure)
				assert.Equal(t, "quotes", cfg.Tracing.ServiceName)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0.001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DQ_ENV_FILE=from-file\nTEST_DQ_ENV_SET=from-file\n"), 0o600))

	t.Setenv("TEST_DQ_ENV_SET", "from-env")
	// Registers cleanup so the file value does not leak into other tests.
	t.Setenv("TEST_DQ_ENV_FILE", "")
	require.NoError(t, os.Unsetenv("TEST_DQ_ENV_FILE"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("TEST_DQ_ENV_FILE"))
	assert.Equal(t, "from-env", os.Getenv("TEST_DQ_ENV_SET"), "existing variables win")
}

func TestLoadEnvFile_MissingOrEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadEnvFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600))

	err := LoadEnvFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading env file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "quotes",
				User:     "quoter",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=quotes user=quoter password=testpass sslmode=disable",
		},
		{
			name: "pool size appended",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "quotes",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
				PoolSize: 20,
			},
			want: "host=db.example.com port=5433 dbname=quotes user=admin password=s3cret sslmode=require pool_max_conns=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

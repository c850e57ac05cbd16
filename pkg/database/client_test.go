package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestConfig starts a dedicated PostgreSQL container and returns a Config
// pointing at it. The embedded-migration path needs to own the whole
// database, so this does not use the shared per-schema test setup.
func newTestConfig(t *testing.T) Config {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("weft"),
		postgres.WithUsername("weft"),
		postgres.WithPassword("weft"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return Config{
		Host:            host,
		Port:            port.Int(),
		User:            "weft",
		Password:        "weft",
		Database:        "weft",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

func TestNewClientRunsMigrations(t *testing.T) {
	cfg := newTestConfig(t)
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Embedded migrations created the full schema.
	tables := []string{
		"workflows",
		"workflow_blocks",
		"workflow_edges",
		"permissions",
		"user_rate_limits",
		"workflow_operations",
	}
	for _, table := range tables {
		var exists bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist after migrations", table)
	}

	// Ent works over the migrated schema.
	wf, err := client.Workflow.Create().
		SetID("wf-migrated").
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Untitled workflow", wf.Name)
}

func TestNewClientIsIdempotent(t *testing.T) {
	cfg := newTestConfig(t)
	ctx := context.Background()

	first, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// A second boot finds no pending migrations and must not fail.
	second, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	require.NoError(t, second.DB().PingContext(ctx))
}

func TestHealthReportsPoolStats(t *testing.T) {
	cfg := newTestConfig(t)
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should answer within a second")
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "weft", cfg.User)
				assert.Equal(t, "weft", cfg.Database)
				assert.Equal(t, "disable", cfg.SSLMode)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "admin", cfg.User)
				assert.Equal(t, "secret", cfg.Password)
				assert.Equal(t, "production", cfg.Database)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Neutralise ambient DB_* vars, then apply the case's set.
			for _, k := range envKeys {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "weft",
		Password: "secret",
		Database: "weft",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "user=weft")
	assert.Contains(t, dsn, "password=secret")
	assert.Contains(t, dsn, "dbname=weft")
	assert.Contains(t, dsn, "sslmode=disable")
}

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSecret satisfies the 32 character minimum for signing secrets.
const testSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JOBDESK_DATABASE_URL", "postgres://localhost:5432/jobdesk_test")
	t.Setenv("JOBDESK_AUTH_TOKEN_SECRET", testSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JOBDESK_SERVER_PORT", "8080")
	t.Setenv("JOBDESK_SERVER_LOG_LEVEL", "debug")
	t.Setenv("JOBDESK_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/jobdesk_test", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.TokenSecret)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"JOBDESK_AUTH_TOKEN_SECRET": testSecret,
			},
			wantErr: "invalid configuration",
		},
		{
			name: "secret too short",
			env: map[string]string{
				"JOBDESK_DATABASE_URL":      "postgres://localhost/jobdesk",
				"JOBDESK_AUTH_TOKEN_SECRET": "tooshort",
			},
			wantErr: "invalid configuration",
		},
		{
			name: "bad log level",
			env: map[string]string{
				"JOBDESK_DATABASE_URL":      "postgres://localhost/jobdesk",
				"JOBDESK_AUTH_TOKEN_SECRET": testSecret,
				"JOBDESK_SERVER_LOG_LEVEL":  "loud",
			},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should contain %q", err.Error(), tt.wantErr)
		})
	}
}

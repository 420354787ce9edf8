package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/jobdesk/jobdesk-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		enabled  slog.Level
		disabled slog.Level
	}{
		{name: "debug level", logLevel: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 4},
		{name: "warn level", logLevel: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{name: "invalid level falls back to info", logLevel: "verbose", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NotNil(t, log)
			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.disabled))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns attached logger", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("falls back to provided default", func(t *testing.T) {
		t.Parallel()

		fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})
}

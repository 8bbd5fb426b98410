package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdvet/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		logger := logging.New(tt.level)
		require.NotNil(t, logger)
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	require.NotNil(t, logger)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	require.NotNil(t, logger)
	assert.Same(t, logger, logging.Default())
}

func TestFromContext(t *testing.T) {
	custom := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), custom)

	assert.Same(t, custom, logging.FromContext(ctx))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

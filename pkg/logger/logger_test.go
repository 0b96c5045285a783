package logger_test

import (
	"testing"

	"seo-audit-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitHonoursLevel(t *testing.T) {
	l, err := logger.Init("warn", "prod")
	require.NoError(t, err)

	assert.Same(t, l, logger.Log)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestInitFallsBackToInfo(t *testing.T) {
	l, err := logger.Init("chatty", "dev")
	require.NoError(t, err)

	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestInitReportsInvalidLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := logger.Init("chatty", "prod", zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	require.NoError(t, err)

	entries := logs.FilterMessage("invalid log level, defaulting to info").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "chatty", entries[0].ContextMap()["level"])
}

func TestInitQuietOnValidLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := logger.Init("debug", "dev", zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	require.NoError(t, err)

	assert.Zero(t, logs.Len())
}

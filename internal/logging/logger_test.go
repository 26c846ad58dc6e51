package logging

import (
	"context"
	"testing"

	"dealswapify/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(zapcore.DebugLevel))

	_, err = New(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_ContextFields(t *testing.T) {
	logger := NewTestLogger()

	ctx := WithTraceID(context.Background(), "trace-123")
	ctx = WithUserID(ctx, "user-9")
	logger.Warn(ctx, "category lookup failed", zap.String("operation", "resolve_name"))

	logger.AssertLogged(t, zapcore.WarnLevel, "lookup failed")
	logger.AssertField(t, "lookup failed", "trace_id", "trace-123")
	logger.AssertField(t, "lookup failed", "user_id", "user-9")
	logger.AssertField(t, "lookup failed", "operation", "resolve_name")
	logger.AssertNotLogged(t, zapcore.ErrorLevel, "lookup failed")
}

func TestLogger_Levels(t *testing.T) {
	logger := NewTestLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	entries := logger.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Empty(t, entries[0].Context)

	logger.Reset()
	assert.Empty(t, logger.All())
}

func TestContextHelpers_EmptyValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTraceID(ctx, ""))
	assert.Equal(t, "", TraceIDFromContext(ctx))
	assert.Equal(t, "", UserIDFromContext(ctx))
	assert.Empty(t, ContextFields(ctx))
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Named("matcher").With(zap.Int("n", 1)).Info(context.Background(), "discarded")
	assert.False(t, logger.Enabled(zapcore.ErrorLevel))
}

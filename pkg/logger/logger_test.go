package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/Payphone-Digital/content-gateway/config"
	ctxutil "github.com/Payphone-Digital/content-gateway/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func useObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := Logger
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestGetLogger_BeforeInit(t *testing.T) {
	prev := Logger
	Logger = nil
	t.Cleanup(func() { Logger = prev })

	assert.NotNil(t, GetLogger())
	assert.NotPanics(t, func() { LogError(errors.New("boom"), "ignored") })
}

func TestInitLogger_WithFileOutput(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	cfg := &config.Config{
		App: config.AppConfig{Name: "test", Environment: "production"},
		Log: config.LogConfig{Path: t.TempDir(), FileOutput: true},
	}
	require.NoError(t, InitLogger(cfg))
	assert.NotNil(t, GetLogger())
	assert.False(t, GetLogger().Core().Enabled(zapcore.DebugLevel))
}

func TestContextLogBuilder_AddsContextFields(t *testing.T) {
	logs := useObserver(t, zapcore.DebugLevel)

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	ctx = ctxutil.WithCollection(ctx, "posts")
	ctx = ctxutil.NewContextWithRequest(ctx, "handler", "ListDocuments")

	WarnWithContext(ctx, "Listing failed").
		Int("http_status", 502).
		Err(errors.New("upstream")).
		Log()

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Listing failed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "posts", fields["collection"])
	assert.Equal(t, "ListDocuments", fields["function"])
	assert.Equal(t, int64(502), fields["http_status"])
	assert.Equal(t, "upstream", fields["error"])
}

func TestContextLogBuilder_RespectsLevel(t *testing.T) {
	logs := useObserver(t, zapcore.InfoLevel)

	DebugWithContext(context.Background(), "hidden").String("k", "v").Log()
	InfoWithContext(context.Background(), "shown").Log()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

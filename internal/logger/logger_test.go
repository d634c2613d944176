package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "server").Info("listening", "port", 8080)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "listening", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "server", fields["component"])
	assert.EqualValues(t, 8080, fields["port"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("ignored", "k", "v")
	l.Sync()
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Debug("d", "n", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e", "err", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Level, e.Message)
	}
	assert.Equal(t, "boom", entries[3].ContextMap()["err"])
}

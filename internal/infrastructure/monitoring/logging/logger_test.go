package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	folioerrors "github.com/turtacn/DevFolio/pkg/errors"
)

// newTestLogger returns a debug-level logger writing JSON into a buffer.
func newTestLogger(t *testing.T) (Logger, *zaptest.Buffer) {
	t.Helper()
	buf := &zaptest.Buffer{}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), buf, zapcore.DebugLevel)
	return &zapLogger{z: zap.New(core)}, buf
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := NewLogger(LogConfig{Level: LevelInfo, Format: format, OutputPaths: []string{"stdout"}})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_EmptyOutputPaths(t *testing.T) {
	l, err := NewLogger(LogConfig{OutputPaths: []string{}})
	assert.ErrorIs(t, err, folioerrors.ErrInvalidConfig)
	assert.Nil(t, l)
}

func TestNewLogger_DefaultsOutputPaths(t *testing.T) {
	l, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNopLogger_AllMethodsNoOp(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Debug("d")
		l.Info("i")
		l.Warn("w")
		l.Error("e")
		l.With(String("k", "v")).Named("x").Info("msg")
	})
	assert.NoError(t, Sync(l))
	assert.False(t, SetLevel(l, LevelDebug))
}

func TestZapLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		log   func(Logger)
	}{
		{"debug", func(l Logger) { l.Debug("msg") }},
		{"info", func(l Logger) { l.Info("msg") }},
		{"warn", func(l Logger) { l.Warn("msg") }},
		{"error", func(l Logger) { l.Error("msg") }},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, buf := newTestLogger(t)
			tt.log(l)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
		})
	}
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Named("acquisition").With(String("source", "backend"), Int("attempt", 2)).Info("msg")
	out := buf.String()
	assert.Contains(t, out, `"logger":"acquisition"`)
	assert.Contains(t, out, `"source":"backend"`)
	assert.Contains(t, out, `"attempt":2`)
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	appErr := folioerrors.New(folioerrors.CodeNetwork, "Network Error")
	l.Error("failed", Err(appErr), Code(appErr), Bool("online", false))
	l.Info("ok", Err(nil))

	require.Equal(t, 2, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "[CLIENT_001] Network Error", ctx["error"])
	assert.Equal(t, "<nil>", logs.All()[1].ContextMap()["error"])
	assert.Equal(t, "CLIENT_001", ctx["error_code"])
	assert.Equal(t, false, ctx["online"])
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	lvl, ok = ParseLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	lvl, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestSetLevel(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: LevelInfo})
	require.NoError(t, err)
	zl := l.(*zapLogger)
	assert.False(t, zl.z.Core().Enabled(zapcore.DebugLevel))

	child := l.Named("http")
	assert.True(t, SetLevel(l, LevelDebug))
	assert.True(t, zl.z.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, child.(*zapLogger).z.Core().Enabled(zapcore.DebugLevel), "children share the level")

	assert.False(t, SetLevel(l, "nope"))
	assert.False(t, SetLevel(NewLoggerFromCore(zapcore.NewNopCore()), LevelDebug))
}

func TestFromContext_RequestID(t *testing.T) {
	l, buf := newTestLogger(t)
	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))

	FromContext(ctx, l).Info("msg")
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)

	buf.Reset()
	FromContext(context.Background(), l).Info("msg")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	l, _ := newTestLogger(t)
	SetDefault(l)
	assert.Same(t, l, Default())

	SetDefault(nil)
	assert.Same(t, l, Default())
}

func TestClientLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cl := ClientLogger(NewLoggerFromCore(core))

	cl.Debugf("API Request: %s %s", "GET", "/portfolio")
	cl.Infof("info %d", 1)
	cl.Errorf("API Response Error: %v", errors.New("boom"))

	all := logs.All()
	require.Len(t, all, 3)
	assert.Equal(t, "API Request: GET /portfolio", all[0].Message)
	assert.Equal(t, zapcore.DebugLevel, all[0].Level)
	assert.Equal(t, "client", all[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, all[1].Level)
	assert.Equal(t, zapcore.WarnLevel, all[2].Level)
	assert.Equal(t, "API Response Error: boom", all[2].Message)

	assert.NotPanics(t, func() { ClientLogger(nil).Errorf("x") })
}

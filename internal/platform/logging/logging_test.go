package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Context tests

func TestFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
		assert.Equal(t, defaultLogger, logger)
	})

	t.Run("empty context returns default", func(t *testing.T) {
		assert.Equal(t, defaultLogger, FromContext(context.Background()))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		custom := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithContext(context.Background(), custom)
		assert.Equal(t, custom, FromContext(ctx))
	})
}

func TestContextEnrichment(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).Info("test with all IDs")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "req-123", logEntry["request_id"])
	assert.Equal(t, "trace-456", logEntry["trace_id"])
	assert.Equal(t, "corr-789", logEntry["correlation_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	defer SetDefault(original)

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
}

// Logger tests

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "museo",
		Version: "1.0.0",
	}, &buf)

	logger.Info("test message", slog.String("key", "value"))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "museo", logEntry["service_name"])
	assert.Equal(t, "1.0.0", logEntry["service_version"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "debug", Format: "text", Service: "museo"}, &buf)

	logger.Debug("debug message")

	assert.Contains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "museo")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "info", Format: "pretty", Service: "museo"}, &buf)

	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_WithFileConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "museo",
		Version: "1.0.0",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}, &buf)

	logger.Info("test message to file")

	assert.Contains(t, buf.String(), "test message to file")

	require.FileExists(t, logFile)
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message to file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "trace", expected: LevelTrace},
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "unknown", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, slogToCharmLevel(LevelTrace))
	assert.Equal(t, charmlog.DebugLevel, slogToCharmLevel(slog.LevelDebug))
	assert.Equal(t, charmlog.InfoLevel, slogToCharmLevel(slog.LevelInfo))
	assert.Equal(t, charmlog.WarnLevel, slogToCharmLevel(slog.LevelWarn))
	assert.Equal(t, charmlog.ErrorLevel, slogToCharmLevel(slog.LevelError))
	assert.Equal(t, charmlog.ErrorLevel, slogToCharmLevel(slog.Level(12)))
}

// MultiHandler tests

func TestMultiHandler_Handle(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	handler1 := slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler2 := slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(handler1, handler2))

	// Info reaches both handlers
	logger.Info("test message")
	assert.Contains(t, buf1.String(), "test message")
	assert.Contains(t, buf2.String(), "test message")

	buf1.Reset()
	buf2.Reset()

	// Debug reaches only the debug handler
	logger.Debug("debug message")
	assert.Contains(t, buf1.String(), "debug message")
	assert.Empty(t, buf2.String())
}

func TestMultiHandler_Enabled(t *testing.T) {
	errOnly := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	debug := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})

	assert.True(t, NewMultiHandler(errOnly, debug).Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, NewMultiHandler(errOnly, errOnly).Enabled(context.Background(), slog.LevelInfo))
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&buf1, nil),
		slog.NewJSONHandler(&buf2, nil),
	).WithAttrs([]slog.Attr{slog.String("attr1", "value1")})

	slog.New(multi).Info("test message")

	assert.Contains(t, buf1.String(), "value1")
	assert.Contains(t, buf2.String(), "value1")
}

// Redact tests

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		name         string
		fieldName    string
		fieldValue   string
		shouldRedact bool
	}{
		{name: "redact password", fieldName: "password", fieldValue: "secret123", shouldRedact: true},
		{name: "redact token", fieldName: "token", fieldValue: "my-secret-token", shouldRedact: true},
		{name: "redact api_key", fieldName: "api_key", fieldValue: "api-key-value", shouldRedact: true},
		{name: "redact authorization", fieldName: "authorization", fieldValue: "Bearer token123", shouldRedact: true},
		{name: "redact secret prefix", fieldName: "secret_config", fieldValue: "sensitive-data", shouldRedact: true},
		{name: "keep normal field", fieldName: "department", fieldValue: "Asian Art", shouldRedact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()})
			slog.New(handler).Info("test", slog.String(tt.fieldName, tt.fieldValue))

			output := buf.String()
			if tt.shouldRedact {
				assert.NotContains(t, output, tt.fieldValue, "sensitive value should be redacted")
				assert.True(t,
					strings.Contains(output, "REDACTED") || strings.Contains(output, "***"),
					"output should contain redaction marker",
				)
			} else {
				assert.Contains(t, output, tt.fieldValue)
			}
		})
	}
}

func TestNewReplaceAttr_BearerPattern(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()})
	slog.New(handler).Info("test", slog.String("auth", "Bearer abc123xyz456"))

	assert.NotContains(t, buf.String(), "abc123xyz456", "bearer token value should be redacted")
}

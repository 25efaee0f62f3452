package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Info("test message", slog.String("key", "value"))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "JSON handler should produce valid JSON")
	assert.Equal(t, "test message", m["msg"])
	assert.Equal(t, "value", m["key"])
	assert.NotContains(t, m, slog.SourceKey)
}

func TestNew_TextFormatAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "text", &buf)

	logger.Debug("source test")

	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "source test")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New("WARN", "json", &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_SetsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	assert.Same(t, logger, slog.Default())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" Info ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), strings.TrimSpace(in))
	}
}

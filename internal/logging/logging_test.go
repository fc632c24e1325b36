package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("content reloaded", "path", "content.yaml")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "only the info line should be written")
	assert.Equal(t, "content reloaded", line["msg"])
	assert.Equal(t, "content.yaml", line["path"])
}

func TestNewWithWriter_TextAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "text", "debug")

	logger.Debug("rendering page")

	assert.Contains(t, buf.String(), "msg=\"rendering page\"")
	assert.Contains(t, buf.String(), "source=")
}

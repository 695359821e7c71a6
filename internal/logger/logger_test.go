package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, int(slog.LevelInfo))

	log.Debug("hidden", "k", "v")
	log.Info("shown", "user_id", "42")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "user_id=42")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, int(slog.LevelDebug)).With("component", "auth")

	log.Warn("careful")

	assert.Contains(t, buf.String(), "component=auth")
	assert.Contains(t, buf.String(), "level=WARN")
}

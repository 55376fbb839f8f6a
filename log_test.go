package rasterlab

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSharedLogLevel(t *testing.T) {
	defer SetLogLevel(slog.LevelInfo)

	var buf bytes.Buffer
	logger := NewLogger(&buf)

	SetLogLevel(slog.LevelInfo)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}

	SetLogLevel(slog.LevelDebug)
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("expected debug output after lowering the level: %q", buf.String())
	}

	buf.Reset()
	SetLogLevel(slog.LevelError)
	logger.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("warn passed an error-level logger: %q", buf.String())
	}
}

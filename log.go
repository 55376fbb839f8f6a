package rasterlab

import (
	"io"
	"log/slog"
)

// logLevel is shared by every logger built with NewLogger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetLogLevel changes the level of every logger built with NewLogger,
// including ones created earlier.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// NewLogger returns a text logger writing to w at the shared level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

package emu

import (
	"context"
	"log/slog"
)

// LevelTrace is below slog.LevelDebug and reports per-instruction events.
const LevelTrace slog.Level = -8

// Trace logs msg at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// Package output builds the structured logger used for debug tracing
package output

import (
	"io"
	"log/slog"
)

// Configure returns a logger writing to w. With debug unset the logger
// discards everything, so stderr carries nothing but the diagnostic line.
func Configure(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

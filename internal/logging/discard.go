package logging

import (
	"io"
	"log/slog"
)

// Discard returns a logger that drops everything. Meant for tests and for
// callers that have no log sink configured.
func Discard() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

package obslog

import (
	"context"
	"log/slog"
)

// recordHandler is a minimal slog.Handler that retains every record it
// receives, for assertions in this package's tests.
type recordHandler struct {
	level   slog.Level
	records []slog.Record
}

func newRecordHandler(level slog.Level) *recordHandler {
	return &recordHandler{level: level}
}

func (h *recordHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *recordHandler) Records() []slog.Record {
	return h.records
}

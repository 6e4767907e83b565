package engine

import (
	"context"
	"log/slog"

	"github.com/tliron/commonlog"
)

// commonLogHandler adapts a github.com/tliron/commonlog.Logger to
// slog.Handler, so a host that never supplies its own *slog.Logger still
// gets the graph's structured, leveled obslog output (the graph is the
// only facet the engine hands a logger to). Grounded on the teacher's own
// lsp/server.go, which depends on commonlog only because glsp requires it
// internally and silences it (`commonlog.Configure(0, nil)`) in favor of
// slog everywhere else — here commonlog becomes the default *backend*
// slog writes to instead, rather than being silenced.
type commonLogHandler struct {
	logger commonlog.Logger
	attrs  []slog.Attr
}

// newCommonLogLogger returns a *slog.Logger backed by a named commonlog
// logger, for hosts that construct an [Engine] without [WithLogger].
func newCommonLogLogger(name string) *slog.Logger {
	return slog.New(&commonLogHandler{logger: commonlog.GetLogger(name)})
}

func (h *commonLogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *commonLogHandler) Handle(_ context.Context, record slog.Record) error {
	kv := make([]any, 0, 2*(record.NumAttrs()+len(h.attrs)))
	for _, a := range h.attrs {
		kv = append(kv, a.Key, a.Value.Any())
	}
	record.Attrs(func(a slog.Attr) bool {
		kv = append(kv, a.Key, a.Value.Any())
		return true
	})

	switch {
	case record.Level >= slog.LevelError:
		h.logger.Error(record.Message, kv...)
	case record.Level >= slog.LevelWarn:
		h.logger.Warning(record.Message, kv...)
	case record.Level >= slog.LevelInfo:
		h.logger.Info(record.Message, kv...)
	default:
		h.logger.Debug(record.Message, kv...)
	}
	return nil
}

func (h *commonLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &commonLogHandler{logger: h.logger, attrs: merged}
}

func (h *commonLogHandler) WithGroup(name string) slog.Handler {
	return h
}

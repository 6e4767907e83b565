package obslog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Op represents a running operation with automatic start/end logging.
//
// It gives every facet method consistent boundary logging with duration
// measurement and cancellation reporting, and makes "forgot to log the end"
// bugs structurally impossible: End is idempotent and safe on a nil
// receiver. Create via [Begin].
type Op struct {
	ctx       context.Context //nolint:containedctx // operation boundary needs ctx at End time
	logger    *slog.Logger
	name      string
	startTime time.Time
	ended     atomic.Bool
}

// Begin starts a new operation and logs its start at Debug level.
//
// Returns nil when logging is disabled (logger is nil, or Debug is below the
// configured level), so the common case costs a couple of nanoseconds. Every
// *Op method is safe to call on a nil receiver.
//
// Operation names follow the convention typir.<package>.<Method>:
//   - typir.graph.AddNode
//   - typir.subtype.IsSubType
//   - typir.assignability.GetAssignabilityResult
func Begin(ctx context.Context, logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	op := &Op{
		ctx:       ctx,
		logger:    logger,
		name:      name,
		startTime: time.Now(),
	}

	logAttrs := make([]slog.Attr, 0, len(attrs)+2)
	logAttrs = append(logAttrs, slog.String("op", name))
	if reqID, ok := RequestIDFrom(ctx); ok {
		logAttrs = append(logAttrs, slog.String("request_id", reqID))
	}
	logAttrs = append(logAttrs, attrs...)
	logger.LogAttrs(ctx, slog.LevelDebug, "operation started", logAttrs...)

	return op
}

// End logs operation completion. Only the first call produces output;
// subsequent calls (e.g. an explicit End followed by a deferred one) are
// silently ignored.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil {
		return
	}
	if o.ended.Swap(true) {
		return
	}
	if o.logger == nil || !o.logger.Enabled(o.ctx, slog.LevelDebug) {
		return
	}

	elapsed := time.Since(o.startTime)

	logAttrs := make([]slog.Attr, 0, len(attrs)+6)
	logAttrs = append(logAttrs, slog.String("op", o.name))
	if reqID, ok := RequestIDFrom(o.ctx); ok {
		logAttrs = append(logAttrs, slog.String("request_id", reqID))
	}
	logAttrs = append(logAttrs,
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Duration("duration", elapsed),
	)
	if ctxErr := o.ctx.Err(); ctxErr != nil {
		logAttrs = append(logAttrs, slog.String("ctx_err", ctxErr.Error()))
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)

	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "operation ended", logAttrs...)
}

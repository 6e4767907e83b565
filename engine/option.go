package engine

import (
	"log/slog"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/subtype"
)

// config holds Engine construction options, adapted from the teacher's
// graph.GraphOption/instance.Option functional-option pattern (spec.md §9
// ambient configuration note): no external config file format, just a
// small slice of closures over a private struct.
type config struct {
	logger            *slog.Logger
	subtypeOpts       []subtype.Option
	assignabilityOpts []assignability.Option
}

// Option configures an Engine at construction.
type Option func(*config)

// WithLogger sets the *slog.Logger the engine's graph logs its operation
// boundaries to. The relation, inference, and factory packages do not
// receive it and emit no log output. If never set, [New] builds one backed
// by github.com/tliron/commonlog.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxSubTypePathLength overrides the subtype service's BFS bound.
func WithMaxSubTypePathLength(n int) Option {
	return func(c *config) {
		c.subtypeOpts = append(c.subtypeOpts, subtype.WithMaxPathLength(n))
	}
}

// WithMaxAssignabilityPathLength overrides the assignability service's
// BFS bound.
func WithMaxAssignabilityPathLength(n int) Option {
	return func(c *config) {
		c.assignabilityOpts = append(c.assignabilityOpts, assignability.WithMaxPathLength(n))
	}
}

package validate

import (
	"context"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Constraints provides the one concrete constraint spec.md §6 names as
// a reusable building block for validate.Rule authors: a rule that
// checks a host AST node's actual type against an expected type rarely
// needs anything beyond delegating to assignability and rendering the
// resulting Problem, if any, through the host's own message format.
type Constraints struct{}

// EnsureNodeIsAssignable reports a single message, via messageFn, when
// actual is not assignable to expected — e.g. "the right-hand side of
// an assignment must be assignable to the declared type of the
// left-hand side" (spec.md §4.J). Returns nil when the assignment is
// valid.
func (Constraints) EnsureNodeIsAssignable(ctx context.Context, asn *assignability.Service, actual, expected *types.Type, messageFn func(*problem.Problem) string) []problem.Message {
	result := asn.GetAssignabilityResult(ctx, actual, expected)
	if result.OK() {
		return nil
	}
	return []problem.Message{problem.FromProblem(result.Problem, messageFn)}
}

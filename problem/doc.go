// Package problem provides the engine's error-handling taxonomy: structured
// values for expected failures, returned from operations rather than
// thrown.
//
// # Design principles
//
//   - Values, not exceptions: operations like [subtype.Service.IsSubType] or
//     [overload.Resolve] return a *Problem alongside (or instead of) their
//     success result. A nil *Problem means success.
//   - Closed taxonomy: [Kind] has exactly the eight members the engine's
//     operations can produce; it is not an extensible error-code registry.
//   - Builder-only construction: [New] is the only valid construction path.
//     Direct struct literal construction bypasses the message-emptiness
//     check and defeats the immutability guarantee Build() provides.
//   - Problems can nest: a Problem may carry sub-problems built with
//     [Builder.WithNested]. The engine's own searches do not attach any:
//     a failed assignability search returns an AssignabilityProblem with
//     no nested problems, and overload resolution reports through
//     [overload.Decision] rather than a Problem.
//
// # Fatal vs value
//
// Only programmer mistakes are fatal: a nil receiver, a fixed-parameters
// arity mismatch, a duplicate identifier registered under mismatched kinds.
// Those panic. Every
// other failure a host can trigger through ordinary use of the engine comes
// back as a *Problem.
//
// # Package dependencies
//
// problem sits at the foundation tier: it imports only the standard
// library. It must not import [internal/obslog] or any facet package —
// a Problem must be constructible and renderable without any logging or
// graph dependency.
package problem

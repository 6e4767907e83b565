// Package obslog centralizes the engine's developer-observability logging.
//
// # Design principles
//
//   - Near-zero cost when disabled. Every function checks for a nil logger
//     and an enabled level before doing any work. [Begin] returns nil outright
//     when logging is off, so the hot path through a facet method costs a
//     couple of nanoseconds when no logger is configured.
//   - Standard library only. obslog is a thin wrapper over log/slog; it adds
//     no logging backend of its own.
//   - Injected, not global. Every package that logs takes a *slog.Logger via
//     a functional option on its constructor (e.g. graph.WithLogger). There
//     is no package-level default logger and no environment-variable
//     configuration.
//   - Foundation-tier exclusion. obslog may be imported by graph, kind,
//     types, infer, overload, assignability, and the other facet packages.
//     It must not be imported by problem, which sits below the
//     logging layer: a Problem must be constructible and renderable without
//     any logging dependency.
//
// # Three-way separation of concerns
//
// This engine never logs a user-facing failure. Three channels carry
// different kinds of information and must not be conflated:
//
//  1. *problem.Problem return values carry content the caller is expected to
//     act on or surface to a user — an unresolved conversion, an ambiguous
//     overload, an invalid type graph.
//  2. Plain error returns carry system failures the caller cannot recover
//     from locally — a cancelled context, a programmer-mistake panic
//     recovered at a boundary.
//  3. obslog output carries developer-facing trace information: which
//     operation ran, how long it took, whether its context was cancelled.
//     It is never a substitute for a Problem or an error.
//
// # Usage patterns
//
//   - Operation boundaries: wrap a facet method body in [Begin]/[Op.End] to
//     get start/end log lines with duration and request-ID correlation.
//   - Simple logging: [Debug], [Info], [Warn], [Error] for single log lines
//     with attributes computed unconditionally at the call site.
//   - Lazy logging: the *Lazy variants take a func() []slog.Attr that only
//     runs when the level is enabled, for attributes expensive to compute
//     (formatting, defensive copies, walking a type graph).
//   - Control flow: [Enabled] for call sites that branch on whether a level
//     is active rather than just emitting a line.
//
// Operation names follow typir.<package>.<Method>, e.g. typir.graph.AddNode,
// typir.subtype.IsSubType, typir.assignability.GetAssignabilityResult.
package obslog

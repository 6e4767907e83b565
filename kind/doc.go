// Package kind implements the core type-system engine's closed Kind set.
//
// # The six kinds
//
//   - [Primitive] — a scalar identified by name; identity equality, no
//     intrinsic subtyping.
//   - [Top] — the singleton supertype of every type.
//   - [Bottom] — the singleton subtype of every type.
//   - [Class] — named fields plus a nominal or structural identity policy;
//     structural classes get intrinsic width/depth subtyping.
//   - [Function] — a named output plus ordered named inputs; functions
//     sharing a name form an overload group tracked by types.Registry, not
//     by Function itself.
//   - [FixedParameters] — a fixed-arity generic instantiation (List<T>,
//     Map<K,V>) with a configurable variance policy.
//
// # Why an interface instead of a type switch
//
// Relation-service code (equality, subtype, assignability) never switches
// on concrete kind types. It calls [Kind.Equal] and [Kind.Subtype]
// polymorphically and lets each kind's own implementation decide how to
// compare itself against another Kind value, type-asserting to its own
// concrete type and reporting [problem.KindConflict] on mismatch. Adding a
// kind-specific rule therefore never touches the equality, subtype, or any
// other relation-service package — only the kind's own source file.
package kind

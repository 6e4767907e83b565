// Package validate runs host-node validation rules and collects their
// messages (spec.md §4.J). A [Rule] pattern-matches a node and returns
// zero or more [problem.Message] values; [Collector] runs an ordered
// set of them and concatenates the results, never panicking. Rules may
// call into the relation packages directly — [Constraints] provides the
// one named in spec.md §6, assignability-against-an-expected-type — but
// a host is free to write its own rules against any of graph, equality,
// subtype, conversion, or assignability.
//
// The ordered-rule-run-and-concatenate shape is carried from the
// teacher's instance validator, generalized from validating raw
// instance data against a schema to validating a host AST node against
// a type.
package validate

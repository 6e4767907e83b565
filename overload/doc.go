// Package overload resolves calls against an overload group (spec.md
// §4.I): [Resolve] filters candidates by per-argument assignability,
// scores survivors by shortest-path cost, and returns the unique
// dominating candidate or the tied set as [Decision.Ambiguous]. Never
// silently picks a candidate on a tie (spec.md §9 Open Question (b)).
package overload

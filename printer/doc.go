// Package printer implements the engine's Infrastructure facet printer
// (spec.md §6 `printer.print(t)`): one renderer per [kind.Kind], producing
// a stable, human-readable signature string for a *types.Type.
//
// i18n of the rendered text is explicitly out of scope (spec.md §1
// Non-goals); the only locale concern this package carries is stable
// ordering — a class's fields and a function's overload siblings are
// collated with golang.org/x/text/collate so the same set of names always
// prints in the same order, the way the teacher's location package reaches
// for golang.org/x/text/unicode/norm for its own "stable, well-defined
// ordering" concern rather than hand-rolling one.
package printer

// Package typir provides an embeddable polymorphic type system: a graph of
// Types tagged with a closed set of Kinds (primitive, top, bottom, class,
// function, fixed-parameters), four relation services answering equality,
// subtyping, convertibility, and assignability queries over that graph, a
// composite type-inference dispatcher, a validation-rule collector, and a
// factory facet for building Types without touching the graph directly.
//
// # Architecture overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - problem: structured, taxonomy-tagged failure values (Types and
//	    Problems carry no source location; a host's own diagnostics layer
//	    is responsible for associating a range with a node)
//
//	Kind and graph tier:
//	  - kind: the closed set of type Kinds and the Comparator seam that
//	    lets kind-level Equal/Subtype dispatch reach relation-service state
//	    without importing it
//	  - types: the Type entity and its invalid -> identifiable -> completed
//	    initialization lifecycle
//	  - graph: the type graph itself — nodes, labeled edges, and a FIFO
//	    listener/observer mechanism
//
//	Relation tier (each a *graph.Graph plus, where needed, a kind.Comparator):
//	  - equality, subtype, conversion, assignability
//
//	Dispatch tier:
//	  - overload: the four-step overload resolution algorithm
//	  - infer: the composite inference rule registry built on overload
//	  - validate: an ordered, never-stops-at-first-failure rule collector
//
//	Construction and presentation tier:
//	  - factory: one creator per Kind, wiring types.Initializer + graph.Graph
//	  - printer: collated, human-readable Type rendering
//
//	Facade:
//	  - engine: wires every tier above into one ready-to-use instance
//
// # Entry point
//
//	import "github.com/typegraph/typir/engine"
//
//	e := engine.New()
//	intType := e.Primitives.Create(factory.PrimitiveOptions{Name: "int"})
//	strType := e.Primitives.Create(factory.PrimitiveOptions{Name: "string"})
//	e.Subtype.MarkAsSubType(ctx, intType, strType)
//	isSub, prob := e.IsSubType(ctx, intType, strType)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/typegraph/typir/problem]: structured failure values
//   - [github.com/typegraph/typir/kind]: the closed Kind set
//   - [github.com/typegraph/typir/types]: the Type entity and its lifecycle
//   - [github.com/typegraph/typir/graph]: the type graph
//   - [github.com/typegraph/typir/equality]: type equality
//   - [github.com/typegraph/typir/subtype]: subtyping
//   - [github.com/typegraph/typir/conversion]: declared conversions
//   - [github.com/typegraph/typir/assignability]: assignability path search
//   - [github.com/typegraph/typir/overload]: overload resolution
//   - [github.com/typegraph/typir/infer]: composite type inference
//   - [github.com/typegraph/typir/validate]: host-node validation rules
//   - [github.com/typegraph/typir/factory]: Type construction
//   - [github.com/typegraph/typir/printer]: Type rendering
//   - [github.com/typegraph/typir/engine]: the wired facade
package typir

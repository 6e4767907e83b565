// Package kind implements the engine's closed set of type Kinds: primitive,
// top, bottom, class, function, and fixed-parameters.
//
// A Kind owns identifier derivation, equality analysis, and intrinsic
// subtype analysis for the types tagged with it. It follows the tagged-union
// idiom used throughout this engine's corpus: [Kind] is a small interface
// with an unexported marker method, and each concrete kind is its own struct
// implementing it. Callers dispatch through the interface — never a type
// switch — so adding a kind-specific behavior never requires touching
// relation-service code (only the Kind's own Equal/Subtype implementation).
//
// kind sits below [problem] only; it must not import graph, types, or any
// relation-service package. Analyses that need cross-type relation queries
// (e.g. fixed-parameters' ASSIGNABLE_TYPE variance, or structural class
// subtyping's covariant field check) take a [Comparator] argument supplied
// by the caller, rather than importing the packages that implement one.
package kind

import "github.com/typegraph/typir/problem"

// TypeID is the globally unique identifier of a type, derived by its Kind
// from the type's creation details. It is a plain string wrapper so it can
// be used directly as a map key.
type TypeID string

// String returns the identifier's string form.
func (id TypeID) String() string {
	return string(id)
}

// IsZero reports whether id is the empty identifier.
func (id TypeID) IsZero() bool {
	return id == ""
}

// Comparator answers cross-type relation questions a Kind's own Equal or
// Subtype analysis may need but cannot compute locally, since those
// questions require graph state (registered subtype/conversion edges) a
// foundation-tier package must not depend on. The engine package supplies
// the implementation, backed by its equality, subtype, and assignability
// services, and hands it to those services as their cmp argument.
type Comparator interface {
	// TypesEqual reports whether the types identified by a and b are equal.
	TypesEqual(a, b TypeID) bool
	// IsSubType reports whether sub is a subtype of sup.
	IsSubType(sub, sup TypeID) bool
	// IsAssignable reports whether a value of type from may be assigned
	// where to is expected (subtype or implicit conversion).
	IsAssignable(from, to TypeID) bool
}

// Kind is the behavior bundle every concrete kind (Primitive, Top, Bottom,
// Class, Function, FixedParameters) implements.
//
// Equal and Subtype take the other side's Kind as an opaque interface value;
// implementations type-assert it to their own concrete type and report a
// [problem.KindConflict] when the assertion fails, mirroring §4.D's dispatch
// rule ("if a.kind !== b.kind return a KindConflict problem").
type Kind interface {
	// Name returns the kind's category name, e.g. "primitive", "class".
	Name() string

	// Identifier returns this kind's derived identifier for the type it
	// describes.
	Identifier() TypeID

	// Equal reports structural equality against another Kind value of the
	// same concrete type, using cmp for any nested type comparisons.
	Equal(other Kind, cmp Comparator) (bool, *problem.Problem)

	// Subtype reports this kind's own intrinsic subtype relation to other,
	// independent of any explicitly declared graph.SubTypeEdge. Most kinds
	// report false with no edges declared; Class's structural width/depth
	// check and FixedParameters' variance check are the two substantive
	// intrinsic rules in the core kind set.
	Subtype(other Kind, cmp Comparator) (bool, *problem.Problem)

	// String returns the user-facing printable signature.
	String() string

	// kind is an unexported marker preventing external packages from
	// implementing Kind; the set of concrete kinds is closed.
	kind()
}

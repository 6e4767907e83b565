package problem

// Kind identifies the taxonomy a Problem belongs to.
//
// Kind is a closed, fixed set: every failure the engine can report as a
// value (as opposed to a panic for a programmer mistake) has exactly one
// Kind. Kind is an ordered enumeration purely for stable String() output;
// the order carries no severity meaning the way a severity level does in a
// diagnostics collector, because a Problem here is never "worse" than
// another in a way callers need to rank.
type Kind uint8

const (
	// KindConflict indicates two types of incompatible kind were compared
	// where the operation requires the same kind (e.g. equality dispatch).
	KindConflict Kind = iota

	// TypeEqualityProblem indicates two types share a kind but differ in
	// structure.
	TypeEqualityProblem

	// SubTypeProblem indicates a requested subtype relation was denied.
	SubTypeProblem

	// ConversionProblem indicates a requested conversion was never
	// registered between the two types.
	ConversionProblem

	// AssignabilityProblem indicates no path of subtype/conversion edges
	// connects the source type to the target type.
	AssignabilityProblem

	// InferenceProblem indicates an inference rule matched but a child's
	// inference failed, or no rule applied to the node at all.
	InferenceProblem

	// AmbiguousOverload indicates more than one candidate tied for best
	// match and no unique dominator exists.
	AmbiguousOverload

	// InitializationError indicates a type's preconditions could never be
	// satisfied, e.g. a cyclic subtype declaration with no bottom-type
	// exemption.
	InitializationError
)

// String returns the canonical label for the kind.
func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "kind_conflict"
	case TypeEqualityProblem:
		return "type_equality_problem"
	case SubTypeProblem:
		return "sub_type_problem"
	case ConversionProblem:
		return "conversion_problem"
	case AssignabilityProblem:
		return "assignability_problem"
	case InferenceProblem:
		return "inference_problem"
	case AmbiguousOverload:
		return "ambiguous_overload"
	case InitializationError:
		return "initialization_error"
	default:
		return "unknown"
	}
}

// IsZero reports whether k is the zero Kind. Since KindConflict is the zero
// value, callers constructing a Problem through [New] should never rely on
// the zero value meaning "no kind" — use [Problem.IsZero] on the Problem
// itself instead.
func (k Kind) IsZero() bool {
	return k == KindConflict
}

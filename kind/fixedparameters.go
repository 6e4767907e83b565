package kind

import (
	"slices"
	"strings"

	"github.com/typegraph/typir/problem"
)

// Variance selects how FixedParameters compares its own parameter types
// against another instantiation of the same base name when deciding
// subtyping.
type Variance uint8

const (
	// EqualType requires pairwise-equal parameter types (invariant).
	EqualType Variance = iota
	// SubType requires pairwise subtype parameter types (covariant).
	SubType
	// AssignableType requires pairwise-assignable parameter types.
	AssignableType
)

// FixedParameters is a fixed-arity generic instantiation, e.g. List<int> or
// Map<string, int>. Each instantiation is its own Type with its own
// FixedParameters kind value; the variance policy is set once per base name
// at factory-construction time and carried on every instantiation's kind
// value so comparisons never need to consult a separate template type.
type FixedParameters struct {
	baseName   string
	paramIDs   []TypeID
	variance   Variance
	identifier TypeID
}

// NewFixedParameters constructs a FixedParameters kind for one
// instantiation of baseName with the given parameter type identifiers.
func NewFixedParameters(baseName string, paramIDs []TypeID, variance Variance) FixedParameters {
	fp := FixedParameters{
		baseName: baseName,
		paramIDs: slices.Clone(paramIDs),
		variance: variance,
	}
	fp.identifier = deriveFixedParamsIdentifier(fp)
	return fp
}

func deriveFixedParamsIdentifier(fp FixedParameters) TypeID {
	var b strings.Builder
	b.WriteString(fp.baseName)
	b.WriteByte('<')
	for i, id := range fp.paramIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(id))
	}
	b.WriteByte('>')
	return TypeID(b.String())
}

func (fp FixedParameters) Name() string       { return "fixed_parameters" }
func (fp FixedParameters) Identifier() TypeID { return fp.identifier }
func (fp FixedParameters) BaseName() string   { return fp.baseName }
func (fp FixedParameters) Variance() Variance { return fp.variance }

// ParamIDs returns a defensive copy of the instantiation's positional
// parameter type identifiers.
func (fp FixedParameters) ParamIDs() []TypeID {
	return slices.Clone(fp.paramIDs)
}

func (fp FixedParameters) Equal(other Kind, cmp Comparator) (bool, *problem.Problem) {
	o, ok := other.(FixedParameters)
	if !ok {
		return false, kindConflict(fp, other)
	}
	if fp.baseName != o.baseName || len(fp.paramIDs) != len(o.paramIDs) {
		return false, nil
	}
	for i, id := range fp.paramIDs {
		equal := id == o.paramIDs[i]
		if cmp != nil {
			equal = cmp.TypesEqual(id, o.paramIDs[i])
		}
		if !equal {
			return false, nil
		}
	}
	return true, nil
}

// Subtype requires the same base name and applies the configured variance
// policy pairwise to the instantiations' parameter types.
func (fp FixedParameters) Subtype(other Kind, cmp Comparator) (bool, *problem.Problem) {
	o, ok := other.(FixedParameters)
	if !ok {
		return false, kindConflict(fp, other)
	}
	if fp.baseName != o.baseName || len(fp.paramIDs) != len(o.paramIDs) {
		return false, nil
	}
	for i, id := range fp.paramIDs {
		want := o.paramIDs[i]
		switch fp.variance {
		case EqualType:
			equal := id == want
			if cmp != nil {
				equal = cmp.TypesEqual(id, want)
			}
			if !equal {
				return false, nil
			}
		case SubType:
			if cmp == nil || !cmp.IsSubType(id, want) {
				return false, nil
			}
		case AssignableType:
			if cmp == nil || !cmp.IsAssignable(id, want) {
				return false, nil
			}
		}
	}
	return true, nil
}

func (fp FixedParameters) String() string {
	var b strings.Builder
	b.WriteString(fp.baseName)
	b.WriteByte('<')
	for i, id := range fp.paramIDs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(id))
	}
	b.WriteByte('>')
	return b.String()
}

func (FixedParameters) kind() {}

package kind

import (
	"slices"
	"strings"

	"github.com/typegraph/typir/problem"
)

// IdentityPolicy selects how a Class derives its identifier and equality.
type IdentityPolicy uint8

const (
	// NominalIdentity identifies a class by its qualified name alone; two
	// classes with identical fields but different names are distinct.
	NominalIdentity IdentityPolicy = iota
	// StructuralIdentity identifies a class by its qualified name plus a
	// canonical encoding of its fields; two classes with the same name but
	// different fields are distinct.
	StructuralIdentity
)

// Field is one named, typed member of a Class.
type Field struct {
	Name     string
	TypeID   TypeID
	Optional bool
}

// Class is a named, field-bearing kind with nominal or structural identity.
//
// Class is frozen after construction: [NewClass] computes the identifier
// once (a sorted canonical field encoding under [StructuralIdentity]) and no
// method on Class can alter it afterwards. Accessors that return slices
// ([Class.Fields], [Class.SuperTypes]) return defensive copies via
// slices.Clone rather than wrapping them in a dynamic-value container —
// this engine's structural data is fixed and typed, so a reflection-based
// wrapper buys nothing a plain clone doesn't already give for free.
type Class struct {
	qualifiedName string
	identity      IdentityPolicy
	fields        []Field
	superTypes    []TypeID
	identifier    TypeID
}

// NewClass constructs a Class kind. fields and superTypes are cloned; the
// caller's slices may be freely reused afterwards.
func NewClass(qualifiedName string, identity IdentityPolicy, fields []Field, superTypes []TypeID) Class {
	c := Class{
		qualifiedName: qualifiedName,
		identity:      identity,
		fields:        slices.Clone(fields),
		superTypes:    slices.Clone(superTypes),
	}
	c.identifier = deriveClassIdentifier(c)
	return c
}

func deriveClassIdentifier(c Class) TypeID {
	if c.identity == NominalIdentity {
		return TypeID(c.qualifiedName)
	}

	sorted := slices.Clone(c.fields)
	slices.SortFunc(sorted, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	b.WriteString(c.qualifiedName)
	b.WriteByte('{')
	for i, f := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Name)
		b.WriteByte(':')
		b.WriteString(string(f.TypeID))
	}
	b.WriteByte('}')
	return TypeID(b.String())
}

func (c Class) Name() string          { return "class" }
func (c Class) Identifier() TypeID    { return c.identifier }
func (c Class) QualifiedName() string { return c.qualifiedName }
func (c Class) Identity() IdentityPolicy { return c.identity }

// Fields returns a defensive copy of the class's own (non-inherited)
// fields.
func (c Class) Fields() []Field {
	return slices.Clone(c.fields)
}

// SuperTypes returns a defensive copy of the class's explicitly declared
// superclass identifiers. Transitive closure over these is the subtype
// service's job, not Class's own.
func (c Class) SuperTypes() []TypeID {
	return slices.Clone(c.superTypes)
}

func (c Class) Equal(other Kind, cmp Comparator) (bool, *problem.Problem) {
	o, ok := other.(Class)
	if !ok {
		return false, kindConflict(c, other)
	}

	if c.identity == NominalIdentity || o.identity == NominalIdentity {
		if c.qualifiedName != o.qualifiedName {
			p := problem.Newf(problem.TypeEqualityProblem,
				"class %q and %q have different qualified names", c.qualifiedName, o.qualifiedName).
				WithInvolvedType(problem.TypeRef{ID: string(c.Identifier()), Name: c.String()}).
				WithInvolvedType(problem.TypeRef{ID: string(o.Identifier()), Name: o.String()}).
				Build()
			return false, &p
		}
		return true, nil
	}

	if len(c.fields) != len(o.fields) {
		p := problem.Newf(problem.TypeEqualityProblem,
			"class %q has %d fields, %q has %d", c.qualifiedName, len(c.fields), o.qualifiedName, len(o.fields)).Build()
		return false, &p
	}

	byName := make(map[string]Field, len(o.fields))
	for _, f := range o.fields {
		byName[f.Name] = f
	}
	for _, f := range c.fields {
		match, ok := byName[f.Name]
		if !ok || f.Optional != match.Optional {
			p := problem.Newf(problem.TypeEqualityProblem,
				"class %q field %q has no structural match in %q", c.qualifiedName, f.Name, o.qualifiedName).Build()
			return false, &p
		}
		if cmp != nil && !cmp.TypesEqual(f.TypeID, match.TypeID) {
			p := problem.Newf(problem.TypeEqualityProblem,
				"class %q field %q type differs from %q", c.qualifiedName, f.Name, o.qualifiedName).Build()
			return false, &p
		}
	}
	return true, nil
}

// Subtype reports Class's intrinsic structural subtyping: c is a structural
// subtype of other when every field other declares is present in c with an
// equal-or-covariant type (width/depth subtyping). Nominal subtyping is not
// intrinsic to Class — it is realized entirely by explicit
// graph.SubTypeEdge entries the factory adds from [Class.SuperTypes] at
// creation time, which the subtype service's transitive closure already
// covers; calling this method for two nominally-identified classes always
// reports false (no edges implied beyond what the service already walks).
func (c Class) Subtype(other Kind, cmp Comparator) (bool, *problem.Problem) {
	o, ok := other.(Class)
	if !ok {
		return false, kindConflict(c, other)
	}
	if c.identity != StructuralIdentity || o.identity != StructuralIdentity {
		return false, nil
	}

	byName := make(map[string]Field, len(c.fields))
	for _, f := range c.fields {
		byName[f.Name] = f
	}
	for _, want := range o.fields {
		got, ok := byName[want.Name]
		if !ok {
			return false, nil
		}
		if want.Optional && !got.Optional {
			return false, nil
		}
		if cmp == nil {
			continue
		}
		if !cmp.TypesEqual(got.TypeID, want.TypeID) && !cmp.IsSubType(got.TypeID, want.TypeID) {
			return false, nil
		}
	}
	return true, nil
}

func (c Class) String() string {
	if c.identity == NominalIdentity {
		return c.qualifiedName
	}
	fields := slices.Clone(c.fields)
	slices.SortFunc(fields, func(a, b Field) int { return strings.Compare(a.Name, b.Name) })
	var b strings.Builder
	b.WriteString(c.qualifiedName)
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(string(f.TypeID))
		if f.Optional {
			b.WriteByte('?')
		}
	}
	b.WriteByte('}')
	return b.String()
}

func (Class) kind() {}

package printer

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/types"
)

// collator sorts field and overload names with a stable, locale-sensible
// order rather than raw byte comparison, so output is deterministic
// regardless of declaration order and reads naturally for an English-
// speaking host (the only locale this package targets — full i18n is out
// of scope).
var collator = collate.New(language.English)

// Print returns the user-facing signature of t, dispatching on its kind.
// Class fields are rendered in collated name order so the same class
// always prints identically regardless of how its fields were declared.
func Print(t *types.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch k := t.Kind().(type) {
	case kind.Primitive:
		return k.String()
	case kind.Top:
		return k.String()
	case kind.Bottom:
		return k.String()
	case kind.Class:
		return printClass(k)
	case kind.Function:
		return printFunction(k)
	case kind.FixedParameters:
		return printFixedParameters(k)
	default:
		return t.Kind().String()
	}
}

func printClass(c kind.Class) string {
	if c.Identity() == kind.NominalIdentity {
		return c.QualifiedName()
	}

	fields := c.Fields()
	slices.SortFunc(fields, func(a, b kind.Field) int {
		return collator.CompareString(a.Name, b.Name)
	})

	var b strings.Builder
	b.WriteString(c.QualifiedName())
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

func printFunction(f kind.Function) string {
	var b strings.Builder
	b.WriteString(f.FunctionName())
	b.WriteByte('(')
	for i, p := range f.Params() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(string(p.TypeID))
	}
	b.WriteString(") -> ")
	b.WriteString(string(f.Output()))
	return b.String()
}

func printFixedParameters(fp kind.FixedParameters) string {
	var b strings.Builder
	b.WriteString(fp.BaseName())
	b.WriteByte('<')
	for i, id := range fp.ParamIDs() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(id))
	}
	b.WriteByte('>')
	return b.String()
}

// PrintOverloadGroup renders every Function-kind type registered under
// name, collated by their rendered signature so the group always prints in
// the same order regardless of declaration order — the grouping
// counterpart to [Print]'s per-class field ordering.
func PrintOverloadGroup(registry *types.Registry, name string) []string {
	group := registry.FunctionsNamed(name)
	rendered := make([]string, 0, len(group))
	for _, t := range group {
		rendered = append(rendered, Print(t))
	}
	slices.SortFunc(rendered, func(a, b string) int {
		if c := collator.CompareString(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return rendered
}

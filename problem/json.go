package problem

import "encoding/json"

// Wire format types for JSON serialization. Field names use camelCase and
// optional fields use omitzero, matching the stable wire-format discipline
// the rest of this engine's diagnostics follow.

type problemWire struct {
	Kind          string        `json:"kind"`
	Message       string        `json:"message"`
	NestedProblems []problemWire `json:"nestedProblems,omitzero"`
	InvolvedTypes  []typeRefWire `json:"involvedTypes,omitzero"`
}

type typeRefWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toProblemWire(p Problem) problemWire {
	wire := problemWire{
		Kind:    p.kind.String(),
		Message: p.message,
	}
	if len(p.nested) > 0 {
		wire.NestedProblems = make([]problemWire, len(p.nested))
		for i, n := range p.nested {
			wire.NestedProblems[i] = toProblemWire(n)
		}
	}
	if len(p.involvedTypes) > 0 {
		wire.InvolvedTypes = make([]typeRefWire, len(p.involvedTypes))
		for i, ref := range p.involvedTypes {
			wire.InvolvedTypes[i] = typeRefWire{ID: ref.ID, Name: ref.Name}
		}
	}
	return wire
}

// JSON returns the stable JSON representation of a Problem, matching the
// `{ kind, message, nestedProblems, involvedTypes }` record shape callers
// compose into their own diagnostics.
func JSON(p Problem) json.RawMessage {
	wire := toProblemWire(p)
	//nolint:errchkjson // wire type is JSON-safe by construction
	data, err := json.Marshal(wire)
	if err != nil {
		panic("problem: unexpected JSON marshal error: " + err.Error())
	}
	return data
}

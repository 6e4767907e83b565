package factory

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/subtype"
	"github.com/typegraph/typir/types"
)

// Classes creates Class-kinded types (spec.md §6 `Classes.create`).
type Classes struct {
	G       *graph.Graph
	R       *types.Registry
	Subtype *subtype.Service
}

// ClassOptions describes a class to create. SuperTypes are the class's
// explicitly declared nominal supertypes: Classes.Create adds a
// graph.SubTypeEdge from the new class to each one, since Class's own
// Subtype analyzer only ever reports structural width/depth subtyping,
// never nominal (kind/class.go's doc comment on Class.Subtype).
type ClassOptions struct {
	QualifiedName string
	Identity      kind.IdentityPolicy
	Fields        []kind.Field
	SuperTypes    []kind.TypeID
}

// Create builds and registers a Class type. Preconditions are every field
// and supertype identifier except the class's own — recursive fields
// (spec.md S5, "Node { next: Node }") reference the class's own eventual
// identifier, which would deadlock the initializer if treated as a
// precondition of itself, so it is computed up front and excluded.
func (c Classes) Create(opts ClassOptions) *types.Type {
	k := kind.NewClass(opts.QualifiedName, opts.Identity, opts.Fields, opts.SuperTypes)
	selfID := k.Identifier()

	seen := map[kind.TypeID]struct{}{selfID: {}}
	var preconditions []types.TypeID
	add := func(id kind.TypeID) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		preconditions = append(preconditions, id)
	}
	for _, f := range opts.Fields {
		add(f.TypeID)
	}
	for _, s := range opts.SuperTypes {
		add(s)
	}

	ini := types.NewInitializer(c.R, preconditions, func() (kind.Kind, *problem.Problem) {
		return k, nil
	})
	ini.Start()
	t, ok := <-ini.Produced()
	if !ok {
		return nil
	}

	ctx := context.Background()
	c.G.AddNode(ctx, t)
	for _, superID := range opts.SuperTypes {
		super, found := c.R.Lookup(superID)
		if !found {
			continue
		}
		c.Subtype.MarkAsSubType(ctx, t, super)
	}
	return t
}

package types

import (
	"sync"

	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
)

// FinalizeFunc computes the finished Kind for a type once every
// precondition identifier it depends on is present in the registry. It
// runs at most once per Initializer.
type FinalizeFunc func() (kind.Kind, *problem.Problem)

// Initializer drives a single Type through invalid → identifiable →
// completed (spec.md §4.C). Preconditions are other types' identifiers
// that must already exist as nodes (in any state) before this type's own
// identifier and structure can be computed — e.g. a class's declared
// supertypes, or a function parameter's declared type.
//
// Recursive types (spec.md S5, "Node { next: Node }") need no special
// back-pointer handling here: a Class's own fields reference other types
// by TypeID string, not by *Type pointer, so a self-referential field is
// just the string the class's own identifier will turn out to be — the
// identifier-indexed [Registry] resolves it once this type publishes,
// exactly as spec.md §9 directs ("use identifier-indexed lookups", not
// ownership-graph back-pointers).
type Initializer struct {
	mu sync.Mutex

	registry      *Registry
	preconditions map[TypeID]struct{}
	finalize      FinalizeFunc

	started  bool
	t        *Type
	produced chan *Type
	problem  *problem.Problem
}

// NewInitializer creates an Initializer for a type depending on the given
// precondition identifiers. Call [Initializer.Start] to begin resolving
// them.
func NewInitializer(registry *Registry, preconditionIDs []TypeID, finalize FinalizeFunc) *Initializer {
	if registry == nil {
		panic("types.NewInitializer: nil registry")
	}
	if finalize == nil {
		panic("types.NewInitializer: nil finalize")
	}
	pre := make(map[TypeID]struct{}, len(preconditionIDs))
	for _, id := range preconditionIDs {
		pre[id] = struct{}{}
	}
	return &Initializer{
		registry:      registry,
		preconditions: pre,
		finalize:      finalize,
		produced:      make(chan *Type, 1),
	}
}

// Produced returns a channel that receives the canonical, deduplicated
// Type exactly once, after it reaches Identifiable. If finalization
// ultimately fails, the channel is closed without a value and
// [Initializer.Err] reports the problem.
func (ini *Initializer) Produced() <-chan *Type {
	return ini.produced
}

// Err returns the finalization problem, if any, after Produced has
// closed without delivering a value.
func (ini *Initializer) Err() *problem.Problem {
	ini.mu.Lock()
	defer ini.mu.Unlock()
	return ini.problem
}

// Start begins precondition resolution. It is idempotent; calling it more
// than once has no effect beyond the first call.
func (ini *Initializer) Start() {
	ini.mu.Lock()
	if ini.started {
		ini.mu.Unlock()
		return
	}
	ini.started = true
	remaining := make(map[TypeID]struct{}, len(ini.preconditions))
	for id := range ini.preconditions {
		remaining[id] = struct{}{}
	}
	ini.mu.Unlock()

	if len(remaining) == 0 {
		ini.proceed()
		return
	}

	var once sync.Once
	var mu sync.Mutex
	for id := range remaining {
		id := id
		ini.registry.notifyWhenPresent(id, func(*Type) {
			mu.Lock()
			delete(remaining, id)
			done := len(remaining) == 0
			mu.Unlock()
			if done {
				once.Do(ini.proceed)
			}
		})
	}
}

// proceed runs kind-specific finalization, registers the resulting node
// (deduplicating against an existing node with the same identifier), and
// advances it through identifiable and completed, notifying listeners at
// each transition.
func (ini *Initializer) proceed() {
	k, prob := ini.finalize()
	if prob != nil {
		ini.mu.Lock()
		ini.problem = prob
		ini.mu.Unlock()
		close(ini.produced)
		return
	}

	candidate := newType(k)
	canonical, isNew := ini.registry.register(candidate)

	ini.mu.Lock()
	ini.t = canonical
	ini.mu.Unlock()

	if isNew {
		notify(canonical.setState(Identifiable), func(l Listener) { l.OnSwitchedToIdentifiable(canonical) })
		notify(canonical.setState(Completed), func(l Listener) { l.OnSwitchedToCompleted(canonical) })
		if f, isFunc := k.(interface{ FunctionName() string }); isFunc {
			ini.registry.indexFunction(f.FunctionName(), canonical)
		}
	}

	ini.produced <- canonical
	close(ini.produced)
}

// Invalidate cascades an upstream precondition's removal to this
// initializer's type: a completed or identifiable node whose precondition
// disappeared reverts to invalid and must be re-initialized once the
// precondition reappears.
func (ini *Initializer) Invalidate(removedID TypeID) {
	ini.mu.Lock()
	_, isPrecondition := ini.preconditions[removedID]
	t := ini.t
	ini.mu.Unlock()

	if !isPrecondition || t == nil {
		return
	}
	notify(t.setState(Invalid), func(l Listener) { l.OnInvalidated(t) })
}

// notify invokes fn for each listener in snapshot. Extracted as a helper
// so proceed/Invalidate share the same dispatch shape.
func notify(snapshot []Listener, fn func(Listener)) {
	for _, l := range snapshot {
		fn(l)
	}
}

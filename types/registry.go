package types

import "sync"

// Registry deduplicates Types by identifier and tracks function overload
// groups by name. One Registry is owned by the engine; all Initializers
// register their produced nodes through it.
//
// Grounded on the teacher's dedup-by-identifier discipline in
// schema/type.go (TypesSlice / lookup-by-name indices), generalized from a
// single schema's flat type list to identifier-keyed dedup across the
// whole engine.
type Registry struct {
	mu sync.Mutex

	byID map[TypeID]*Type

	// functionsByName groups completed Function-kind types sharing a
	// function name, for overload resolution (spec.md §4.I).
	functionsByName map[string][]*Type

	// waiters fire once a Type with the given identifier is registered.
	// Used by Initializer to resolve preconditions that reference a type
	// which has not been created yet.
	waiters map[TypeID][]func(*Type)
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:            make(map[TypeID]*Type),
		functionsByName: make(map[string][]*Type),
		waiters:         make(map[TypeID][]func(*Type)),
	}
}

// Lookup returns the Type registered under id, if any.
func (r *Registry) Lookup(id TypeID) (*Type, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	return t, ok
}

// All returns a snapshot of every registered Type.
func (r *Registry) All() []*Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Type, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out
}

// FunctionsNamed returns every registered Function-kind type sharing name,
// for overload candidate lookup.
func (r *Registry) FunctionsNamed(name string) []*Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	group := r.functionsByName[name]
	out := make([]*Type, len(group))
	copy(out, group)
	return out
}

// register deduplicates candidate by identifier: if a Type with the same
// identifier is already registered, the candidate is discarded and the
// existing node is returned with ok == false; otherwise candidate is
// stored and returned with ok == true. A candidate whose identifier is
// already registered under a different kind category is a programmer
// mistake and panics.
func (r *Registry) register(candidate *Type) (canonical *Type, ok bool) {
	id := candidate.ID()

	r.mu.Lock()
	if existing, found := r.byID[id]; found {
		r.mu.Unlock()
		if existing.Kind().Name() != candidate.Kind().Name() {
			panic("types.Registry: identifier " + string(id) + " already registered as " +
				existing.Kind().Name() + ", not " + candidate.Kind().Name())
		}
		return existing, false
	}
	r.byID[id] = candidate
	waiters := r.waiters[id]
	delete(r.waiters, id)
	r.mu.Unlock()

	for _, cb := range waiters {
		cb(candidate)
	}
	return candidate, true
}

// indexFunction adds a completed Function-kind type to its name group.
// Called once a Type transitions to Completed, not at registration time,
// since overload resolution must only see fully-defined signatures.
func (r *Registry) indexFunction(name string, t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functionsByName[name] = append(r.functionsByName[name], t)
}

// remove detaches id from the registry. Edge detachment in the type graph
// is the graph's responsibility; the registry only tracks identifier
// dedup and overload grouping.
func (r *Registry) remove(id TypeID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	for name, group := range r.functionsByName {
		for i, t := range group {
			if t.ID() == id {
				r.functionsByName[name] = append(group[:i], group[i+1:]...)
				break
			}
		}
	}
}

// notifyWhenPresent calls cb as soon as a Type with the given identifier
// is registered — immediately, if one already is.
func (r *Registry) notifyWhenPresent(id TypeID, cb func(*Type)) {
	r.mu.Lock()
	if t, ok := r.byID[id]; ok {
		r.mu.Unlock()
		cb(t)
		return
	}
	r.waiters[id] = append(r.waiters[id], cb)
	r.mu.Unlock()
}

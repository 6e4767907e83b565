// Package types implements the Type entity and its initialization lifecycle
// (spec.md §3, §4.C): identifier-deduplicated nodes tagged with a Kind,
// mutable only until completed.
//
// types depends on [kind] and [problem] only; it does not depend on [graph]
// — a *Type is a free-standing value the graph stores by identifier, not a
// graph-aware object. Relation services (equality, subtype, conversion,
// assignability) accept both a *graph.Graph and the *Type values they
// operate on.
package types

import (
	"sync"

	"github.com/typegraph/typir/kind"
)

// TypeID is the identifier of a Type, as derived by its Kind. It is the
// kind package's TypeID re-exported here so callers of this package never
// need to import kind directly just to hold an identifier.
type TypeID = kind.TypeID

// State is a Type's position in the invalid → identifiable → completed
// lifecycle (spec.md §4.C).
type State uint8

const (
	// Invalid is the state every newly created Type starts in: its
	// preconditions (other TypeIDs it depends on) have not all resolved
	// to nodes yet.
	Invalid State = iota
	// Identifiable means every precondition has resolved; the type's
	// identifier is fixed and deduplication against existing nodes with
	// the same identifier has happened, but kind-specific finalization
	// (field/parameter typing) has not completed yet.
	Identifiable
	// Completed means finalization succeeded; the type is frozen except
	// for removal.
	Completed
)

// String returns the state's canonical label.
func (s State) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Identifiable:
		return "identifiable"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Listener receives lifecycle notifications for a single Type.
type Listener interface {
	// OnSwitchedToIdentifiable is called once, when the type first
	// becomes identifiable.
	OnSwitchedToIdentifiable(t *Type)
	// OnSwitchedToCompleted is called once, when the type first becomes
	// completed.
	OnSwitchedToCompleted(t *Type)
	// OnInvalidated is called whenever a completed or identifiable type
	// cascades back to invalid because a precondition was removed.
	OnInvalidated(t *Type)
}

// Type is a node in the type graph: a Kind-derived identifier, a lifecycle
// state, and — once completed — frozen kind-specific structure.
//
// Type is mutated only by its [Initializer] until it reaches [Completed];
// afterwards it is immutable except for removal, matching spec.md §3's
// "mutated only by its initializer until completed; afterwards immutable
// except for removal". There is no runtime guard that panics on a late
// write: Type exposes no exported setters, and its state changes only
// through the unexported setState that [Initializer] calls.
type Type struct {
	mu sync.RWMutex

	id    TypeID
	k     kind.Kind
	state State

	listeners []Listener
}

// newType constructs a Type in the Invalid state. Unexported: production
// code creates Types only through an [Initializer], never directly —
// mirroring the teacher's "NewType is primarily for internal use" note,
// taken one step further into an enforced invariant.
func newType(k kind.Kind) *Type {
	if k == nil {
		panic("types.newType: nil kind")
	}
	return &Type{k: k, state: Invalid}
}

// ID returns the type's identifier. Before the type reaches Identifiable,
// the identifier may still be provisional if its Kind's derivation depends
// on not-yet-resolved precondition types; callers that need a stable
// identifier should wait for Identifiable via a [Listener].
func (t *Type) ID() TypeID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.k.Identifier()
}

// Kind returns the type's Kind descriptor.
func (t *Type) Kind() kind.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.k
}

// State returns the type's current lifecycle state.
func (t *Type) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// IsCompleted reports whether the type has reached Completed.
func (t *Type) IsCompleted() bool {
	return t.State() == Completed
}

// AddListener registers l to receive lifecycle notifications for t.
func (t *Type) AddListener(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters l. A no-op if l was never registered.
func (t *Type) RemoveListener(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.listeners {
		if existing == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// setState transitions the type's state and returns the listener snapshot
// to notify, taken under the lock so notification happens outside it (a
// listener that calls back into t must not deadlock).
func (t *Type) setState(s State) []Listener {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
	if len(t.listeners) == 0 {
		return nil
	}
	snapshot := make([]Listener, len(t.listeners))
	copy(snapshot, t.listeners)
	return snapshot
}

// String returns the Kind's printable signature.
func (t *Type) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.k.String()
}

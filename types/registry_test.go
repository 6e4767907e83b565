package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typegraph/typir/kind"
)

func TestRegistry_Register_DedupesByIdentifier(t *testing.T) {
	r := NewRegistry()
	a := newType(kind.NewPrimitive("int"))
	b := newType(kind.NewPrimitive("int"))

	canonicalA, isNewA := r.register(a)
	canonicalB, isNewB := r.register(b)

	assert.True(t, isNewA)
	assert.False(t, isNewB)
	assert.Same(t, canonicalA, canonicalB, "second register with the same identifier must return the first node")
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	a := newType(kind.NewPrimitive("int"))
	r.register(a)

	found, ok := r.Lookup("int")
	require.True(t, ok)
	assert.Same(t, a, found)

	_, ok = r.Lookup("double")
	assert.False(t, ok)
}

func TestRegistry_NotifyWhenPresent_FiresImmediatelyIfAlreadyRegistered(t *testing.T) {
	r := NewRegistry()
	a := newType(kind.NewPrimitive("int"))
	r.register(a)

	var got *Type
	r.notifyWhenPresent("int", func(ty *Type) { got = ty })

	assert.Same(t, a, got)
}

func TestRegistry_NotifyWhenPresent_FiresOnceTypeArrives(t *testing.T) {
	r := NewRegistry()

	var got *Type
	r.notifyWhenPresent("int", func(ty *Type) { got = ty })
	assert.Nil(t, got, "must not fire before the type exists")

	a := newType(kind.NewPrimitive("int"))
	r.register(a)

	assert.Same(t, a, got)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	a := newType(kind.NewPrimitive("int"))
	r.register(a)

	r.remove("int")

	_, ok := r.Lookup("int")
	assert.False(t, ok)
}

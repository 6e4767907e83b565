package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/typegraph/typir/kind"
)

func TestNewType_NilKindPanics(t *testing.T) {
	assert.Panics(t, func() { newType(nil) })
}

func TestType_StartsInvalid(t *testing.T) {
	ty := newType(kind.NewPrimitive("int"))
	assert.Equal(t, Invalid, ty.State())
	assert.False(t, ty.IsCompleted())
}

func TestType_ID_DelegatesToKind(t *testing.T) {
	ty := newType(kind.NewPrimitive("int"))
	assert.Equal(t, TypeID("int"), ty.ID())
}

type recordingListener struct {
	identifiable []string
	completed    []string
	invalidated  []string
}

func (r *recordingListener) OnSwitchedToIdentifiable(ty *Type) {
	r.identifiable = append(r.identifiable, string(ty.ID()))
}
func (r *recordingListener) OnSwitchedToCompleted(ty *Type) {
	r.completed = append(r.completed, string(ty.ID()))
}
func (r *recordingListener) OnInvalidated(ty *Type) {
	r.invalidated = append(r.invalidated, string(ty.ID()))
}

func TestType_AddRemoveListener(t *testing.T) {
	ty := newType(kind.NewPrimitive("int"))
	l := &recordingListener{}
	ty.AddListener(l)
	ty.setState(Identifiable)
	ty.RemoveListener(l)
	ty.setState(Completed)

	assert.Empty(t, l.identifiable, "setState itself does not notify; callers dispatch the returned snapshot")
}

func TestType_String_DelegatesToKind(t *testing.T) {
	ty := newType(kind.NewPrimitive("int"))
	assert.Equal(t, "int", ty.String())
}

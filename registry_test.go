package expects

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oriumgames/expects/ecs"
)

type pos struct{}

type vel struct{}

type mover struct{}

func (mover) ExpectedComponents() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[pos](), reflect.TypeFor[vel]()}
}

func (mover) ExpectedComponentNames() []string {
	return TypeNames(reflect.TypeFor[pos](), reflect.TypeFor[vel]())
}

type empty struct{}

func (empty) ExpectedComponents() []reflect.Type { return nil }
func (empty) ExpectedComponentNames() []string   { return nil }

type mismatched struct{}

func (mismatched) ExpectedComponents() []reflect.Type { return []reflect.Type{reflect.TypeFor[pos]()} }
func (mismatched) ExpectedComponentNames() []string   { return nil }

type notStruct int

func (notStruct) ExpectedComponents() []reflect.Type { return []reflect.Type{reflect.TypeFor[pos]()} }
func (notStruct) ExpectedComponentNames() []string   { return []string{"pos"} }

func TestRegistrationOf(t *testing.T) {
	r := registrationOf[mover]()

	require.Equal(t, reflect.TypeFor[mover](), r.Type())
	require.Equal(t, "github.com/oriumgames/expects.mover", r.Name())
	require.Equal(t, []reflect.Type{reflect.TypeFor[pos](), reflect.TypeFor[vel]()}, r.Expected())
	require.Equal(t, []string{"github.com/oriumgames/expects.pos", "github.com/oriumgames/expects.vel"}, r.ExpectedNames())
}

func TestRegistrationOfRejectsUnenforceableContracts(t *testing.T) {
	require.PanicsWithValue(t, "expects: github.com/oriumgames/expects.empty declares no expected components", func() {
		registrationOf[empty]()
	})
	require.PanicsWithValue(t, "expects: github.com/oriumgames/expects.mismatched has 1 expected components but 0 names", func() {
		registrationOf[mismatched]()
	})
	require.PanicsWithValue(t, "expects: declaring type github.com/oriumgames/expects.notStruct must be a struct, got int", func() {
		registrationOf[notStruct]()
	})
}

func TestRegistryIgnoresDuplicates(t *testing.T) {
	var r registry

	r.add(registrationOf[mover]())
	r.add(registrationOf[mover]())

	regs := r.snapshot()
	require.Len(t, regs, 1)
	require.Equal(t, reflect.TypeFor[mover](), regs[0].Type())
}

func TestRegistrySealsOnRead(t *testing.T) {
	var r registry

	require.Empty(t, r.snapshot())
	require.PanicsWithValue(t,
		"expects: github.com/oriumgames/expects.mover registered after startup; Register must only be called from init",
		func() { r.add(registrationOf[mover]()) })
}

func TestRegisterAfterStartupPanics(t *testing.T) {
	Registrations()

	require.Panics(t, func() { Register[mover]() })

	for _, r := range Registrations() {
		require.NotEqual(t, reflect.TypeFor[mover](), r.Type())
	}
}

func TestValidateShortCircuits(t *testing.T) {
	w := ecs.NewWorld()
	install(w, []Registration{registrationOf[mover]()})

	// Neither expectation is present: only the first one is reported.
	require.PanicsWithValue(t,
		"github.com/oriumgames/expects.mover expects github.com/oriumgames/expects.pos but it was not found on entity 0v1",
		func() { w.Spawn(&mover{}) })

	require.PanicsWithValue(t,
		"github.com/oriumgames/expects.mover expects github.com/oriumgames/expects.vel but it was not found on entity 1v1",
		func() { w.Spawn(&mover{}, &pos{}) })

	require.NotPanics(t, func() { w.Spawn(&vel{}, &mover{}, &pos{}) })
}

func TestInstallTwiceBindsTwice(t *testing.T) {
	w := ecs.NewWorld()
	regs := []Registration{registrationOf[mover]()}

	install(w, regs)
	install(w, regs)

	onAdd, _ := w.HookCount(reflect.TypeFor[mover]())
	require.Equal(t, 2, onAdd)
}

func TestTypeName(t *testing.T) {
	require.Equal(t, "github.com/oriumgames/expects.pos", TypeName(reflect.TypeFor[pos]()))
	require.Equal(t, "*github.com/oriumgames/expects.pos", TypeName(reflect.TypeFor[*pos]()))
	require.Equal(t, "[]github.com/oriumgames/expects.pos", TypeName(reflect.TypeFor[[]pos]()))
	require.Equal(t, "int", TypeName(reflect.TypeFor[int]()))
	require.Equal(t, "map[string]int", TypeName(reflect.TypeFor[map[string]int]()))
	require.Equal(t, "<nil>", TypeName(nil))
}

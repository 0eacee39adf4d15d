package expects

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/oriumgames/expects/ecs"
)

// Contract is implemented by component types that expect other components to
// be present on an entity whenever they are inserted.
//
// Implementations are generated by expectgen from //ecs:expects directives
// and use value receivers, so the zero value of the declaring type answers
// both methods. Both slices are parallel and must not be modified.
type Contract interface {
	// ExpectedComponents returns the type identities of the expected components.
	ExpectedComponents() []reflect.Type

	// ExpectedComponentNames returns display names of the expected components,
	// used in failure messages.
	ExpectedComponentNames() []string
}

// Registration pairs a declaring component type with its expectations and the
// installer that binds its validation hook into a World.
type Registration struct {
	typ      reflect.Type
	name     string
	expected []reflect.Type
	names    []string
	install  func(w *ecs.World, r Registration)
}

// Type returns the declaring component type.
func (r Registration) Type() reflect.Type {
	return r.typ
}

// Name returns the declaring type's fully qualified name.
func (r Registration) Name() string {
	return r.name
}

// Expected returns the expected component types in declaration order.
func (r Registration) Expected() []reflect.Type {
	return slices.Clone(r.expected)
}

// ExpectedNames returns the expected components' display names in declaration
// order.
func (r Registration) ExpectedNames() []string {
	return slices.Clone(r.names)
}

// Install binds the validation hook for the declaring type into w.
func (r Registration) Install(w *ecs.World) {
	r.install(w, r)
}

// registrationOf builds the Registration for T, panicking on contracts that
// cannot be enforced.
func registrationOf[T Contract]() Registration {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("expects: declaring type %s must be a struct, got %v", TypeName(t), t.Kind()))
	}

	var zero T
	expected := zero.ExpectedComponents()
	names := zero.ExpectedComponentNames()

	name := TypeName(t)
	if len(expected) == 0 {
		panic(fmt.Sprintf("expects: %s declares no expected components", name))
	}
	if len(names) != len(expected) {
		panic(fmt.Sprintf("expects: %s has %d expected components but %d names", name, len(expected), len(names)))
	}
	for i, et := range expected {
		if et == nil {
			panic(fmt.Sprintf("expects: %s has a nil expected component at position %d", name, i))
		}
	}

	return Registration{
		typ:      t,
		name:     name,
		expected: slices.Clone(expected),
		names:    slices.Clone(names),
		install:  installHooks[T],
	}
}

// installHooks binds r's validation hook to T's on-add event.
func installHooks[T Contract](w *ecs.World, r Registration) {
	ecs.OnAdd[T](w, r.validate)
}

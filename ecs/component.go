package ecs

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// ComponentID is a World-local identifier for a component type.
// Valid IDs range from 0 to 254.
type ComponentID uint8

// MaxComponents is the maximum number of component types a World supports.
const MaxComponents = 255

// Components is a World's component type table. It maps reflect.Type to
// ComponentID and keeps names for diagnostics.
//
// Lookups are lock-free; IDs are assigned on first insertion of a type and
// never reused.
type Components struct {
	// types maps reflect.Type to ComponentID
	types sync.Map

	names [MaxComponents]string

	nextID atomic.Uint32

	// arrMu protects names
	arrMu sync.RWMutex
}

func newComponents() *Components {
	return &Components{}
}

// register returns the ID for t, assigning a new one if t is unknown.
func (c *Components) register(t reflect.Type) ComponentID {
	if id, ok := c.types.Load(t); ok {
		return id.(ComponentID)
	}

	newID := c.nextID.Add(1) - 1
	if newID >= MaxComponents {
		panic(fmt.Sprintf("ecs: component limit exceeded (max %d types)", MaxComponents))
	}

	actual, loaded := c.types.LoadOrStore(t, ComponentID(newID))
	if loaded {
		// Lost the race; the allocated ID stays unused.
		return actual.(ComponentID)
	}

	c.arrMu.Lock()
	c.names[newID] = t.Name()
	c.arrMu.Unlock()

	return ComponentID(newID)
}

// ID resolves a type identity to the World's component slot.
// It returns false if the type was never inserted into this World.
func (c *Components) ID(t reflect.Type) (ComponentID, bool) {
	if t == nil {
		return 0, false
	}
	if id, ok := c.types.Load(t); ok {
		return id.(ComponentID), true
	}
	return 0, false
}

// Name returns the short name of the component type with the given ID.
func (c *Components) Name(id ComponentID) string {
	c.arrMu.RLock()
	defer c.arrMu.RUnlock()
	return c.names[id]
}

// componentType returns the component type of a pointer value passed to
// Spawn or Insert.
func componentType(component any) reflect.Type {
	if component == nil {
		panic("ecs: nil component")
	}
	t := reflect.TypeOf(component)
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("ecs: component must be a pointer to a struct, got %v", t))
	}
	if reflect.ValueOf(component).IsNil() {
		panic(fmt.Sprintf("ecs: nil component of type %v", t))
	}
	return t.Elem()
}

// TypeOf returns the component type identity of T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

package ecs

import (
	"reflect"
)

// DeferredWorld is the read-only view of a World handed to lifecycle hooks.
// The World is mid-mutation while a hook runs, so only queries are exposed.
type DeferredWorld struct {
	world *World
}

// Components returns the World's component type table.
func (d DeferredWorld) Components() *Components {
	return d.world.components
}

// Entity returns a read-only reference to e.
func (d DeferredWorld) Entity(e Entity) EntityRef {
	return EntityRef{world: d.world, entity: e}
}

// EntityRef is a read-only handle on one entity inside a hook.
type EntityRef struct {
	world  *World
	entity Entity
}

// Contains reports whether the entity currently has the component slot id.
func (r EntityRef) Contains(id ComponentID) bool {
	rec := r.world.recordUnsafe(r.entity)
	if rec == nil {
		return false
	}
	return rec.mask.Has(id)
}

// ContainsType reports whether the entity currently has a component of type t.
// Types never inserted into the World are reported as absent.
func (r EntityRef) ContainsType(t reflect.Type) bool {
	id, ok := r.world.components.ID(t)
	return ok && r.Contains(id)
}

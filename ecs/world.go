package ecs

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// World is one running ECS instance. It owns entities, their components, the
// component type table and the lifecycle hooks bound to it.
//
// All methods are safe for concurrent use. Mutations are serialised by the
// World's lock, and hooks run while it is held.
type World struct {
	id     uuid.UUID
	logger *slog.Logger

	components *Components

	// hooks holds lifecycle hooks by component ID
	hooks   map[ComponentID]*componentHooks
	hooksMu sync.RWMutex

	// entities is indexed by Entity.index; free holds reusable indices
	entities []entityRecord
	free     []uint32
	alive    int
	mu       sync.RWMutex

	// plugins lists names of plugins built into this World, in order
	plugins   []string
	pluginsMu sync.Mutex
}

// NewWorld creates an empty World. Most callers assemble a World through
// NewBuilder instead.
func NewWorld() *World {
	return newWorld(nil)
}

func newWorld(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &World{
		id:         id,
		logger:     logger.With("world", id.String()),
		components: newComponents(),
		hooks:      make(map[ComponentID]*componentHooks),
	}
}

// ID returns the World's unique identity.
func (w *World) ID() uuid.UUID {
	return w.id
}

// Logger returns the World's logger.
func (w *World) Logger() *slog.Logger {
	return w.logger
}

// Components returns the World's component type table.
func (w *World) Components() *Components {
	return w.components
}

// Spawn creates an entity holding the given components and returns it.
// Components must be non-nil pointers to structs. All components are placed
// before any on-add hook runs, so their order is irrelevant to hooks.
func (w *World) Spawn(components ...any) Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	ids := w.resolve(components)
	e := w.allocate()
	w.insertLocked(e, components, ids)
	return e
}

// Insert adds components to an existing entity, replacing components of the
// same type. Like Spawn, the whole set is placed before on-add hooks run.
// Insert panics if e is not alive.
func (w *World) Insert(e Entity, components ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mustRecord(e)
	w.insertLocked(e, components, w.resolve(components))
}

// Remove removes the component of type t from e. It is a no-op if e lacks it.
func (w *World) Remove(e Entity, t reflect.Type) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec := w.mustRecord(e)
	id, ok := w.components.ID(t)
	if !ok || !rec.mask.Has(id) {
		return
	}
	w.runHooks(w.removeHooks(id), e, id)

	delete(rec.components, id)
	rec.mask.Clear(id)
}

// Despawn removes every component from e and frees it. On-remove hooks run
// for each component, in ascending ID order. Despawning a dead entity is a
// no-op.
func (w *World) Despawn(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec := w.recordUnsafe(e)
	if rec == nil {
		return
	}
	for _, id := range rec.mask.IDs() {
		w.runHooks(w.removeHooks(id), e, id)
	}

	rec.components = nil
	rec.mask = Bitmask{}
	rec.alive = false
	w.free = append(w.free, e.index)
	w.alive--
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.recordUnsafe(e) != nil
}

// Contains reports whether e currently has a component of type t.
func (w *World) Contains(e Entity, t reflect.Type) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	id, ok := w.components.ID(t)
	if !ok {
		return false
	}
	rec := w.recordUnsafe(e)
	return rec != nil && rec.mask.Has(id)
}

// Mask returns a copy of e's component bitmask.
func (w *World) Mask(e Entity) Bitmask {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rec := w.recordUnsafe(e)
	if rec == nil {
		return Bitmask{}
	}
	return rec.mask
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.alive
}

// Entities returns a snapshot of all live entities in index order.
func (w *World) Entities() []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Entity, 0, w.alive)
	for i := range w.entities {
		rec := &w.entities[i]
		if rec.alive {
			out = append(out, Entity{index: uint32(i), generation: rec.generation})
		}
	}
	return out
}

// Describe returns a description of e and its component names for debugging.
func (w *World) Describe(e Entity) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rec := w.recordUnsafe(e)
	if rec == nil {
		return "Entity{" + e.String() + ", dead}"
	}

	comps := ""
	for _, id := range rec.mask.IDs() {
		if comps != "" {
			comps += ", "
		}
		comps += w.components.Name(id)
	}
	return "Entity{" + e.String() + ", Components: [" + comps + "]}"
}

// allocate hands out a fresh entity. Caller must hold mu.
func (w *World) allocate() Entity {
	w.alive++
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		rec := &w.entities[idx]
		rec.generation++
		rec.alive = true
		return Entity{index: idx, generation: rec.generation}
	}

	idx := uint32(len(w.entities))
	w.entities = append(w.entities, entityRecord{generation: 1, alive: true})
	return Entity{index: idx, generation: 1}
}

// resolve validates components and returns their IDs, registering new types.
// It panics before any entity state changes.
func (w *World) resolve(components []any) []ComponentID {
	types := make([]reflect.Type, len(components))
	for i, c := range components {
		types[i] = componentType(c)
	}
	ids := make([]ComponentID, len(components))
	for i, t := range types {
		ids[i] = w.components.register(t)
	}
	return ids
}

// insertLocked places components on e and then runs on-add hooks for every
// component type e did not have before. ids come from resolve. Caller must
// hold mu.
func (w *World) insertLocked(e Entity, components []any, ids []ComponentID) {
	rec := w.mustRecord(e)
	if rec.components == nil {
		rec.components = make(map[ComponentID]any, len(components))
	}

	added := make([]ComponentID, 0, len(components))
	for i, c := range components {
		id := ids[i]
		if !rec.mask.Has(id) {
			added = append(added, id)
		}
		rec.components[id] = c
		rec.mask.Set(id)
	}

	for _, id := range added {
		w.runHooks(w.addHooks(id), e, id)
	}
}

// runHooks invokes hooks for one lifecycle event. Caller must hold mu.
func (w *World) runHooks(hooks []Hook, e Entity, id ComponentID) {
	if len(hooks) == 0 {
		return
	}
	dw := DeferredWorld{world: w}
	ctx := HookContext{Entity: e, Component: id}
	for _, hook := range hooks {
		hook(dw, ctx)
	}
}

// recordUnsafe returns the live record for e without locking, or nil.
func (w *World) recordUnsafe(e Entity) *entityRecord {
	if int(e.index) >= len(w.entities) {
		return nil
	}
	rec := &w.entities[e.index]
	if !rec.alive || rec.generation != e.generation {
		return nil
	}
	return rec
}

// mustRecord returns the live record for e or panics. Caller must hold mu.
func (w *World) mustRecord(e Entity) *entityRecord {
	rec := w.recordUnsafe(e)
	if rec == nil {
		panic(fmt.Sprintf("ecs: entity %v does not exist", e))
	}
	return rec
}

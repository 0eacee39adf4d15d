package ecs

import (
	"reflect"
)

// HookContext describes the lifecycle event a hook is invoked for.
type HookContext struct {
	// Entity is the entity whose component set changed.
	Entity Entity

	// Component is the ID of the component that was added or is being removed.
	Component ComponentID
}

// Hook is a component lifecycle callback.
//
// Hooks run synchronously on the goroutine performing the mutation while the
// World is locked. They observe the World through a DeferredWorld and must
// not call World methods, block, or perform I/O.
type Hook func(w DeferredWorld, ctx HookContext)

// componentHooks holds the hooks bound to one component type.
type componentHooks struct {
	onAdd    []Hook
	onRemove []Hook
}

// OnAdd binds a hook invoked after a component of type t is added to an
// entity that did not have it. Replacing an existing component does not
// fire on-add hooks.
//
// Hooks are appended: binding the same hook twice runs it twice.
func (w *World) OnAdd(t reflect.Type, hook Hook) {
	if hook == nil {
		return
	}
	id := w.components.register(t)

	w.hooksMu.Lock()
	h := w.hookSet(id)
	h.onAdd = append(h.onAdd, hook)
	w.hooksMu.Unlock()
}

// OnRemove binds a hook invoked before a component of type t is removed from
// an entity, either explicitly or by despawning it. The component is still
// readable while the hook runs.
func (w *World) OnRemove(t reflect.Type, hook Hook) {
	if hook == nil {
		return
	}
	id := w.components.register(t)

	w.hooksMu.Lock()
	h := w.hookSet(id)
	h.onRemove = append(h.onRemove, hook)
	w.hooksMu.Unlock()
}

// OnAdd binds an on-add hook for component type T.
func OnAdd[T any](w *World, hook Hook) {
	w.OnAdd(TypeOf[T](), hook)
}

// OnRemove binds an on-remove hook for component type T.
func OnRemove[T any](w *World, hook Hook) {
	w.OnRemove(TypeOf[T](), hook)
}

// HookCount returns the number of on-add and on-remove hooks bound to t.
func (w *World) HookCount(t reflect.Type) (onAdd, onRemove int) {
	id, ok := w.components.ID(t)
	if !ok {
		return 0, 0
	}

	w.hooksMu.RLock()
	defer w.hooksMu.RUnlock()

	h := w.hooks[id]
	if h == nil {
		return 0, 0
	}
	return len(h.onAdd), len(h.onRemove)
}

// hookSet returns the hooks for id, creating them. Caller must hold hooksMu.
func (w *World) hookSet(id ComponentID) *componentHooks {
	h := w.hooks[id]
	if h == nil {
		h = &componentHooks{}
		w.hooks[id] = h
	}
	return h
}

// addHooks returns a snapshot of the on-add hooks for id.
func (w *World) addHooks(id ComponentID) []Hook {
	w.hooksMu.RLock()
	defer w.hooksMu.RUnlock()
	if h := w.hooks[id]; h != nil {
		return h.onAdd
	}
	return nil
}

// removeHooks returns a snapshot of the on-remove hooks for id.
func (w *World) removeHooks(id ComponentID) []Hook {
	w.hooksMu.RLock()
	defer w.hooksMu.RUnlock()
	if h := w.hooks[id]; h != nil {
		return h.onRemove
	}
	return nil
}

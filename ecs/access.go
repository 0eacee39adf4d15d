package ecs

// Insert adds component to e, replacing an existing component of type T.
//
// Concurrency:
// This function is thread-safe. It must not be called from inside a hook.
func Insert[T any](w *World, e Entity, component *T) {
	w.Insert(e, component)
}

// Get retrieves e's component of type T.
// Returns nil if e is dead or lacks the component.
//
// Concurrency:
// This function is thread-safe. The returned pointer is shared with the
// World; synchronise field access yourself when mutating from several
// goroutines.
func Get[T any](w *World, e Entity) *T {
	id, ok := w.components.ID(TypeOf[T]())
	if !ok {
		return nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	rec := w.recordUnsafe(e)
	if rec == nil {
		return nil
	}
	c, _ := rec.components[id].(*T)
	return c
}

// Has reports whether e has a component of type T.
func Has[T any](w *World, e Entity) bool {
	return w.Contains(e, TypeOf[T]())
}

// Remove removes e's component of type T, running on-remove hooks first.
func Remove[T any](w *World, e Entity) {
	w.Remove(e, TypeOf[T]())
}

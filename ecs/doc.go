// Package ecs is a small entity component system.
//
// A World stores entities and the components attached to them. Components are
// plain Go structs passed by pointer:
//
//	w := ecs.NewBuilder().
//	    Plugin(myPlugin).
//	    Init()
//
//	e := w.Spawn(&Position{}, &Velocity{X: 1})
//	vel := ecs.Get[Velocity](w, e)
//	ecs.Remove[Velocity](w, e)
//
// # Hooks
//
// Plugins extend a World by binding lifecycle hooks to component types:
//
//	ecs.OnAdd[Velocity](w, func(dw ecs.DeferredWorld, ctx ecs.HookContext) {
//	    // read-only access to ctx.Entity through dw
//	})
//
// On-add hooks fire after every component of a Spawn or Insert call has been
// placed, for each component type the entity did not have before. On-remove
// hooks fire before a component is removed.
package ecs

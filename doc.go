// Package expects validates component dependencies in an ecs.World.
//
// A component type declares which other components must already be present
// on an entity when it is inserted. Unlike a constructor or a bundle, expects
// never adds the missing components: it panics, so the bug surfaces at the
// insertion that caused it.
//
// # Declaring expectations
//
// Annotate the component and run expectgen:
//
//	//go:generate go run github.com/oriumgames/expects/cmd/expectgen
//
//	type Position struct{ mgl64.Vec3 }
//	type Velocity struct{ mgl64.Vec3 }
//
//	// Body expects Position and Velocity when it is inserted.
//	//
//	//ecs:expects Position, Velocity
//	type Body struct{ Mass float64 }
//
// The generator implements Contract for Body and registers it from the
// package's init function, so linking the package is enough for its contracts
// to be known.
//
// # Enabling validation
//
// Add the plugin while assembling the World, typically only in development
// and test builds:
//
//	w := ecs.NewBuilder().
//	    Plugin(expects.Plugin{}).
//	    Init()
//
//	w.Spawn(&Body{}, &Position{}, &Velocity{}) // ok
//	w.Spawn(&Body{}, &Position{})              // panics: Velocity is missing
//
// # Insertion order
//
// The check runs when the declaring component is inserted. Components passed
// to one Spawn or Insert call are all placed before the check, in any order.
// Inserting Body first and its expectations in a later call always panics,
// even though the entity would end up complete.
package expects

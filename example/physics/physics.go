// Package physics declares example kinematic components and their
// expectations.
package physics

//go:generate go run github.com/oriumgames/expects/cmd/expectgen

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/expects/ecs"
)

// Position is a world-space position.
type Position struct {
	mgl64.Vec3
}

// Velocity is a linear velocity in units per second.
type Velocity struct {
	mgl64.Vec3
}

// Body is a rigid body moved by Integrate.
//
//ecs:expects Position, Velocity
type Body struct {
	Mass float64
}

// Anchor pins a body in place.
//
//ecs:expects Position
type Anchor struct{}

// Integrate advances every unanchored body in w by dt seconds and returns the
// number of bodies moved.
func Integrate(w *ecs.World, dt float64) int {
	moved := 0
	for _, e := range w.Entities() {
		if !ecs.Has[Body](w, e) || ecs.Has[Anchor](w, e) {
			continue
		}
		pos := ecs.Get[Position](w, e)
		vel := ecs.Get[Velocity](w, e)
		if pos == nil || vel == nil {
			continue
		}
		pos.Vec3 = pos.Vec3.Add(vel.Vec3.Mul(dt))
		moved++
	}
	return moved
}

// Package vehicle declares components whose expectations span packages.
package vehicle

//go:generate go run github.com/oriumgames/expects/cmd/expectgen

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/expects/ecs"
	"github.com/oriumgames/expects/example/physics"
)

// Wheel is one wheel of a car.
type Wheel struct {
	Radius float64
}

// Car is a drivable rigid body.
//
//ecs:expects physics.Body
//ecs:expects github.com/oriumgames/expects/example/physics.Position, Wheel
type Car struct {
	Heading mgl64.Vec3
}

// Drive sets the velocity of car e to speed along its heading.
func Drive(w *ecs.World, e ecs.Entity, speed float64) {
	car := ecs.Get[Car](w, e)
	vel := ecs.Get[physics.Velocity](w, e)
	if car == nil || vel == nil {
		return
	}
	if car.Heading.Len() == 0 {
		vel.Vec3 = mgl64.Vec3{}
		return
	}
	vel.Vec3 = car.Heading.Normalize().Mul(speed)
}

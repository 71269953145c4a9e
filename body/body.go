// Package body supplies the motion primitive the character moves through:
// a collision-aware Move plus grounded and velocity probes. Exact collision
// resolution stays behind this interface.
package body

import "github.com/strideproj/stride/gamemath"

// Body is a collision-aware kinematic body.
type Body interface {
	// Move displaces the body, resolving collisions. dt is the frame delta
	// the displacement was integrated over; it feeds Velocity.
	Move(delta gamemath.Vec3, dt float64)
	Position() gamemath.Vec3
	Velocity() gamemath.Vec3
	IsGrounded() bool
}

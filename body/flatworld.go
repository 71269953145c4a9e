package body

import (
	"github.com/solarlune/resolv"

	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/tags"
)

// FlatWorld is a resolv-backed world: obstacles on the horizontal XZ plane
// and a flat ground at height zero. The resolv space maps world X to space X
// and world Z to space Y.
type FlatWorld struct {
	space *resolv.Space
}

// NewFlatWorld creates a world of the given horizontal extent. Obstacles and
// bodies must stay within it.
func NewFlatWorld(width, depth float64, cellSize int) *FlatWorld {
	return &FlatWorld{
		space: resolv.NewSpace(int(width), int(depth), cellSize, cellSize),
	}
}

// AddObstacle places a solid axis-aligned block. x/z are the minimum corner.
func (w *FlatWorld) AddObstacle(x, z, width, depth float64) {
	obj := resolv.NewObject(x, z, width, depth, tags.ResolvSolid)
	w.space.Add(obj)
}

// NewBody spawns a character body with a square footprint of the given size,
// centered on pos.
func (w *FlatWorld) NewBody(pos gamemath.Vec3, size float64) *FlatBody {
	obj := resolv.NewObject(pos.X-size/2, pos.Z-size/2, size, size, tags.ResolvPlayer)
	w.space.Add(obj)

	return &FlatBody{
		obj:      obj,
		size:     size,
		y:        pos.Y,
		grounded: pos.Y <= 0,
	}
}

// FlatBody is a Body living in a FlatWorld.
type FlatBody struct {
	obj  *resolv.Object
	size float64

	y        float64
	grounded bool
	velocity gamemath.Vec3
}

// Move resolves the horizontal displacement against solid obstacles one axis
// at a time, then applies the vertical displacement against the flat ground.
func (b *FlatBody) Move(delta gamemath.Vec3, dt float64) {
	dx := delta.X
	if dx != 0 {
		if check := b.obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				contact := check.ContactWithObject(solids[0])
				dx = contact.X()
			}
		}
		b.obj.X += dx
	}

	dz := delta.Z
	if dz != 0 {
		if check := b.obj.Check(0, dz, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				contact := check.ContactWithObject(solids[0])
				dz = contact.Y()
			}
		}
		b.obj.Y += dz
	}
	b.obj.Update()

	dy := delta.Y
	b.y += dy
	if b.y <= 0 {
		dy -= b.y // landed partway through the displacement
		b.y = 0
		b.grounded = true
	} else {
		b.grounded = false
	}

	if dt > 0 {
		b.velocity = gamemath.Vec3{X: dx, Y: dy, Z: dz}.Scale(1 / dt)
	}
}

func (b *FlatBody) Position() gamemath.Vec3 {
	return gamemath.Vec3{
		X: b.obj.X + b.size/2,
		Y: b.y,
		Z: b.obj.Y + b.size/2,
	}
}

func (b *FlatBody) Velocity() gamemath.Vec3 {
	return b.velocity
}

func (b *FlatBody) IsGrounded() bool {
	return b.grounded
}

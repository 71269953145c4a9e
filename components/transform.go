package components

import (
	"github.com/yohamta/donburi"

	"github.com/strideproj/stride/gamemath"
)

type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64
}

// Forward returns the unit horizontal vector the transform is facing.
func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.FromYaw(t.Yaw)
}

var Transform = donburi.NewComponentType[TransformData]()

package player

import "github.com/strideproj/stride/gamemath"

// CameraRig supplies the basis movement input is interpreted in. Only the
// horizontal projection of its axes is used.
type CameraRig interface {
	Forward() gamemath.Vec3
	Right() gamemath.Vec3
}

// FixedCamera is a rig at a constant yaw. The zero value looks down +Z.
type FixedCamera struct {
	Yaw float64
}

func (c FixedCamera) Forward() gamemath.Vec3 {
	return gamemath.FromYaw(c.Yaw)
}

func (c FixedCamera) Right() gamemath.Vec3 {
	return gamemath.FromYaw(c.Yaw + gamemath.HalfPi)
}

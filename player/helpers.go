package player

import (
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/modules"
)

// cameraRelative converts a 2D movement input into a world-space horizontal
// direction using the rig's axes projected onto the ground plane. The result
// is capped at unit length; shorter analog deflections pass through.
func cameraRelative(cam CameraRig, move gamemath.Vec2) gamemath.Vec3 {
	forward := cam.Forward().Horizontal().Normalized()
	right := cam.Right().Horizontal().Normalized()

	dir := right.Scale(move.X).Add(forward.Scale(move.Y))
	if dir.SqrLen() > 1 {
		dir = dir.Normalized()
	}
	return dir
}

// airControl is the mid-air input contribution superimposed on carried
// momentum: current input scaled by the air-control multiplier. Shared by
// Jump and Fall.
func airControl(cam CameraRig, move gamemath.Vec2, loco *modules.Locomotion) gamemath.Vec3 {
	return cameraRelative(cam, move).Scale(loco.MoveSpeed * loco.AirControl)
}

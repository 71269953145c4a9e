package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestVec3Horizontal(t *testing.T) {
	v := Vec3{X: 3, Y: -7, Z: 4}
	h := v.Horizontal()
	assert.Equal(t, Vec3{X: 3, Z: 4}, h)
	assert.InDelta(t, 5.0, h.Len(), 1e-9)
}

func TestVec3NormalizedZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

func TestYawRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		yaw := rapid.Float64Range(-math.Pi+1e-6, math.Pi).Draw(t, "yaw")
		got := FromYaw(yaw).Yaw()
		assert.InDelta(t, yaw, got, 1e-9)
	})
}

func TestDecayExpNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Vec3{
			X: rapid.Float64Range(-50, 50).Draw(t, "x"),
			Z: rapid.Float64Range(-50, 50).Draw(t, "z"),
		}
		drag := rapid.Float64Range(0.05, 2).Draw(t, "drag")
		dt := rapid.Float64Range(1e-4, 0.1).Draw(t, "dt")

		decayed := DecayExp(v, drag, dt)
		assert.LessOrEqual(t, decayed.Len(), v.Len())
		// Direction is preserved, so the decayed vector never crosses zero.
		assert.GreaterOrEqual(t, decayed.Dot(v), 0.0)
	})
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, maxDelta float64
		want                      float64
	}{
		{"reaches target", 0.9, 1.0, 0.5, 1.0},
		{"clamped ascending", 0.0, 1.0, 0.25, 0.25},
		{"clamped descending", 1.0, 0.0, 0.25, 0.75},
		{"already there", 0.5, 0.5, 0.1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MoveToward(tt.current, tt.target, tt.maxDelta), 1e-9)
		})
	}
}

func TestRotateTowardShortestArc(t *testing.T) {
	// From just below +pi to just above -pi should cross the seam,
	// not swing all the way around.
	got := RotateToward(math.Pi-0.1, -math.Pi+0.1, 1000, 1)
	assert.InDelta(t, 0.0, WrapAngle(got-(-math.Pi+0.1)), 1e-6)
}

func TestRotateTowardConverges(t *testing.T) {
	yaw := 0.0
	for i := 0; i < 300; i++ {
		yaw = RotateToward(yaw, 2.0, 10, 1.0/60)
	}
	assert.InDelta(t, 2.0, yaw, 1e-3)
}

package forces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/gamemath"
)

func newTestHandler() *Handler {
	return NewHandler(config.ForcesConfig{Gravity: -9.81, Drag: 0.3})
}

func TestGroundedGravityClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dt := rapid.Float64Range(1e-4, 0.1).Draw(t, "dt")
		ticks := rapid.IntRange(1, 50).Draw(t, "ticks")

		h := newTestHandler()
		for i := 0; i < ticks; i++ {
			h.Tick(dt, true)
		}
		// Not cumulative: grounded descent stays pinned at gravity*dt.
		assert.InDelta(t, -9.81*dt, h.VerticalVelocity(), 1e-9)
	})
}

func TestAirborneGravityAccumulates(t *testing.T) {
	h := newTestHandler()
	dt := 1.0 / 60
	prev := h.VerticalVelocity()
	for i := 0; i < 120; i++ {
		h.Tick(dt, false)
		vv := h.VerticalVelocity()
		assert.InDelta(t, -9.81*dt, vv-prev, 1e-9)
		prev = vv
	}
}

func TestGroundedAscentIsNotClamped(t *testing.T) {
	h := newTestHandler()
	h.Jump(5)
	h.Tick(1.0/60, true)
	// Rising velocity integrates gravity normally even while the ground
	// check still reports contact (the first frame of a jump).
	assert.InDelta(t, 5-9.81/60, h.VerticalVelocity(), 1e-9)
}

func TestImpulseDecayConvergence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := newTestHandler()
		h.AddForce(gamemath.Vec3{
			X: rapid.Float64Range(-30, 30).Draw(t, "x"),
			Z: rapid.Float64Range(-30, 30).Draw(t, "z"),
		})
		dt := rapid.Float64Range(1e-3, 0.05).Draw(t, "dt")

		prev := h.Impulse().Len()
		for i := 0; i < 10000; i++ {
			h.Tick(dt, true)
			cur := h.Impulse().Len()
			assert.LessOrEqual(t, cur, prev, "impulse magnitude must not grow")
			prev = cur
			if cur == 0 {
				break
			}
		}
		assert.Zero(t, h.Impulse().Len(), "impulse must reach exactly zero")
	})
}

func TestImpulseSnapThreshold(t *testing.T) {
	h := newTestHandler()
	h.AddForce(gamemath.Vec3{X: 0.19})
	h.Tick(1.0/60, true)
	assert.Equal(t, gamemath.Vec3{}, h.Impulse(), "below 0.2 units snaps to exactly zero")
}

func TestKnockbackSignals(t *testing.T) {
	h := newTestHandler()
	var calls []bool
	h.SetKnockbackFunc(func(active bool) { calls = append(calls, active) })

	h.AddForce(gamemath.Vec3{X: 10})
	require.Equal(t, []bool{true}, calls)

	// Additional force while already active does not re-signal.
	h.AddForce(gamemath.Vec3{Z: 3})
	require.Equal(t, []bool{true}, calls)

	for i := 0; i < 5000 && len(calls) == 1; i++ {
		h.Tick(1.0/60, true)
	}
	assert.Equal(t, []bool{true, false}, calls, "cleared exactly once after decay")
}

func TestJumpIsAdditive(t *testing.T) {
	h := newTestHandler()
	h.Jump(3)
	h.Jump(4)
	assert.InDelta(t, 7.0, h.VerticalVelocity(), 1e-9)
}

func TestMovementCombinesImpulseAndVertical(t *testing.T) {
	h := newTestHandler()
	h.AddForce(gamemath.Vec3{X: 2, Z: 1})
	h.Jump(6)
	m := h.Movement()
	assert.InDelta(t, 2, m.X, 1e-9)
	assert.InDelta(t, 6, m.Y, 1e-9)
	assert.InDelta(t, 1, m.Z, 1e-9)
}

func TestReset(t *testing.T) {
	h := newTestHandler()
	h.AddForce(gamemath.Vec3{X: 5})
	h.Jump(5)
	h.Reset()
	assert.Equal(t, gamemath.Vec3{}, h.Impulse())
	assert.Zero(t, h.VerticalVelocity())
}

// Package forces integrates gravity and external impulses into a single
// per-frame displacement contribution for the character.
package forces

import (
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/gamemath"
)

// stopThreshold is the impulse magnitude below which knockback snaps to zero.
const stopThreshold = 0.2

// Handler owns the character's accumulated horizontal impulse (knockback,
// decaying exponentially toward zero) and its gravity-integrated vertical
// velocity. It is mutated once per frame by Tick and on demand by AddForce,
// Jump, and Reset.
type Handler struct {
	gravity float64
	drag    float64

	impulse          gamemath.Vec3
	verticalVelocity float64

	knockbackActive bool
	onKnockback     func(active bool)
}

func NewHandler(cfg config.ForcesConfig) *Handler {
	return &Handler{
		gravity: cfg.Gravity,
		drag:    cfg.Drag,
	}
}

// SetKnockbackFunc registers the callback fired when knockback starts
// affecting the character and when it has fully decayed. Callers use it to
// disable/re-enable pathing or AI.
func (h *Handler) SetKnockbackFunc(fn func(active bool)) {
	h.onKnockback = fn
}

// Tick advances gravity and impulse decay by dt.
//
// While grounded and descending, vertical velocity is snapped to gravity*dt
// rather than accumulated: the small downward value keeps the grounded check
// re-triggering next frame without building up over time at rest.
func (h *Handler) Tick(dt float64, grounded bool) {
	if h.verticalVelocity < 0 && grounded {
		h.verticalVelocity = h.gravity * dt
	} else {
		h.verticalVelocity += h.gravity * dt
	}

	if !h.impulse.IsZero() {
		h.impulse = gamemath.DecayExp(h.impulse, h.drag, dt)
		if h.impulse.Len() < stopThreshold {
			h.impulse = gamemath.Vec3{}
			h.setKnockback(false)
		}
	}
}

// AddForce accumulates an external impulse (knockback) onto the character.
func (h *Handler) AddForce(v gamemath.Vec3) {
	h.impulse = h.impulse.Add(v)
	if !h.impulse.IsZero() {
		h.setKnockback(true)
	}
}

// Jump adds force to the vertical velocity. Additive, not a set, so a jump
// stacks with any vertical motion already applied by external forces.
func (h *Handler) Jump(force float64) {
	h.verticalVelocity += force
}

// Reset zeroes both fields unconditionally.
func (h *Handler) Reset() {
	h.impulse = gamemath.Vec3{}
	h.verticalVelocity = 0
	h.setKnockback(false)
}

// Movement returns the combined per-frame force contribution:
// impulse + up * verticalVelocity.
func (h *Handler) Movement() gamemath.Vec3 {
	return h.impulse.Add(gamemath.Up.Scale(h.verticalVelocity))
}

// VerticalVelocity returns the current gravity-integrated vertical velocity.
func (h *Handler) VerticalVelocity() float64 {
	return h.verticalVelocity
}

// Impulse returns the current accumulated knockback impulse.
func (h *Handler) Impulse() gamemath.Vec3 {
	return h.impulse
}

func (h *Handler) setKnockback(active bool) {
	if h.knockbackActive == active {
		return
	}
	h.knockbackActive = active
	if h.onKnockback != nil {
		h.onKnockback(active)
	}
}

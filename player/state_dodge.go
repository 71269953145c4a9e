package player

import (
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/modules"
)

// DodgeState moves at a constant velocity of distance/duration so the total
// displacement is distance-accurate at any frame rate, then counts down
// back to FreeMovement.
type DodgeState struct {
	p    *Player
	loco *modules.Locomotion
	ok   bool

	dir       gamemath.Vec3
	velocity  float64
	remaining float64
}

func NewDodgeState(p *Player) *DodgeState {
	s := &DodgeState{p: p}
	s.loco, s.ok = modules.Get[*modules.Locomotion](p.registry)
	return s
}

func (*DodgeState) Name() string { return "dodge" }

func (s *DodgeState) Enter() {
	p := s.p
	if !s.ok {
		p.log.Error("locomotion module missing; cannot dodge")
		p.ReturnToLocomotion()
		return
	}

	dir := cameraRelative(p.camera, p.frame.Move())
	if dir.IsZero() {
		// Entry is gated on nonzero input; pure forward is a fallback only.
		dir = p.Forward()
	}
	s.dir = dir.Normalized()
	s.velocity = s.loco.DodgeDistance / s.loco.DodgeDuration
	s.remaining = s.loco.DodgeDuration

	p.yaw = s.dir.Yaw()
	p.anim.Trigger("dodge")
}

func (s *DodgeState) Tick(dt float64) {
	p := s.p

	// The final step is shortened so the integrated displacement lands on
	// exactly dodgeDistance.
	step := dt
	if s.remaining < step {
		step = s.remaining
	}
	displacement := s.dir.Scale(s.velocity * step).Add(p.handler.Movement().Scale(dt))
	p.body.Move(displacement, dt)
	p.yaw = s.dir.Yaw()

	s.remaining -= dt
	if s.remaining <= 0 {
		p.machine.SwitchState(NewFreeMovementState(p))
	}
}

func (s *DodgeState) FixedTick(dt float64) {}

func (s *DodgeState) Exit() {}

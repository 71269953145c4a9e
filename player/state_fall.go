package player

import (
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/modules"
)

// FallState is any airborne descent: post-jump, or walking off a ledge. It
// carries the full horizontal velocity it started with, vertical zeroed,
// and applies the same air control as Jump.
type FallState struct {
	p    *Player
	loco *modules.Locomotion
	ok   bool

	momentum gamemath.Vec3
}

func NewFallState(p *Player) *FallState {
	s := &FallState{p: p}
	s.loco, s.ok = modules.Get[*modules.Locomotion](p.registry)
	return s
}

func (*FallState) Name() string { return "fall" }

func (s *FallState) Enter() {
	p := s.p
	if !s.ok {
		p.log.Error("locomotion module missing; cannot fall with control")
		p.ReturnToLocomotion()
		return
	}
	s.momentum = p.body.Velocity().Horizontal()
	p.anim.Trigger("fall")
}

func (s *FallState) Tick(dt float64) {
	p := s.p
	air := airControl(p.camera, p.frame.Move(), s.loco)
	motion := s.momentum.Add(air).Add(p.handler.Movement())
	p.Move(motion, dt)
	p.FaceToward(motion.Horizontal(), s.loco.RotationDamping, dt)

	if p.body.IsGrounded() {
		p.anim.Trigger("land")
		p.machine.SwitchState(NewFreeMovementState(p))
	}
}

func (s *FallState) FixedTick(dt float64) {}

func (s *FallState) Exit() {}

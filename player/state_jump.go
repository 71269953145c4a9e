package player

import (
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/modules"
)

// JumpState is the ascending half of a jump. On the way up it carries half
// of the takeoff horizontal velocity, deliberately shedding the rest, and
// lets input steer a small air-control contribution on top.
type JumpState struct {
	p    *Player
	loco *modules.Locomotion
	ok   bool

	momentum gamemath.Vec3
}

func NewJumpState(p *Player) *JumpState {
	s := &JumpState{p: p}
	s.loco, s.ok = modules.Get[*modules.Locomotion](p.registry)
	return s
}

func (*JumpState) Name() string { return "jump" }

func (s *JumpState) Enter() {
	p := s.p
	if !s.ok {
		p.log.Error("locomotion module missing; cannot jump")
		p.ReturnToLocomotion()
		return
	}
	p.handler.Jump(s.loco.JumpForce)
	s.momentum = p.body.Velocity().Horizontal().Scale(0.5)
	p.anim.Trigger("jump")
}

func (s *JumpState) Tick(dt float64) {
	p := s.p
	air := airControl(p.camera, p.frame.Move(), s.loco)
	motion := s.momentum.Add(air).Add(p.handler.Movement())
	p.Move(motion, dt)
	p.FaceToward(motion.Horizontal(), s.loco.RotationDamping, dt)

	// Apex reached: hand over to Fall.
	if p.handler.VerticalVelocity() <= 0 {
		p.machine.SwitchState(NewFallState(p))
	}
}

func (s *JumpState) FixedTick(dt float64) {}

func (s *JumpState) Exit() {}

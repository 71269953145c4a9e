package player

import (
	"github.com/strideproj/stride/input"
	"github.com/strideproj/stride/modules"
)

// FreeMovementState is the default grounded locomotion state: camera-relative
// walk/sprint, facing interpolation, and the jump/dodge transitions.
type FreeMovementState struct {
	p    *Player
	loco *modules.Locomotion
	ok   bool

	missingLogged bool
}

func NewFreeMovementState(p *Player) *FreeMovementState {
	s := &FreeMovementState{p: p}
	s.loco, s.ok = modules.Get[*modules.Locomotion](p.registry)
	return s
}

func (*FreeMovementState) Name() string { return "free_movement" }

func (s *FreeMovementState) Enter() {}

func (s *FreeMovementState) Tick(dt float64) {
	p := s.p
	if !s.ok {
		// Nowhere safer to bounce to; ticks degrade to no-ops.
		if !s.missingLogged {
			p.log.Error("locomotion module missing; free movement disabled")
			s.missingLogged = true
		}
		return
	}

	if !p.body.IsGrounded() {
		p.machine.SwitchState(NewFallState(p))
		return
	}

	move := p.frame.Move()
	dir := cameraRelative(p.camera, move)

	speed := s.loco.MoveSpeed
	if p.frame.Pressed(input.ActionSprint) && !move.IsZero() && s.sprintFunded(dt) {
		speed = s.loco.SprintSpeed
	}

	p.Move(dir.Scale(speed).Add(p.handler.Movement()), dt)

	target := 0.0
	if !move.IsZero() {
		target = 1.0
		p.FaceToward(dir, s.loco.RotationDamping, dt)
	}
	p.anim.SetTarget(locomotionParam, target, s.loco.BlendDampTime)

	if p.frame.JustPressed(input.ActionJump) {
		p.machine.SwitchState(NewJumpState(p))
		return
	}
	if p.frame.JustPressed(input.ActionDodge) && !move.IsZero() {
		if st, ok := modules.Get[*modules.Stamina](p.registry); ok && !st.SpendDodge() {
			return // insufficient stamina: the input is swallowed
		}
		p.machine.SwitchState(NewDodgeState(p))
		return
	}
}

// sprintFunded pays the per-frame sprint cost. Without a stamina module
// sprinting is free; with one, an exhausted pool degrades to walk speed.
func (s *FreeMovementState) sprintFunded(dt float64) bool {
	st, ok := modules.Get[*modules.Stamina](s.p.registry)
	if !ok {
		return true
	}
	return st.DrainSprint(dt)
}

func (s *FreeMovementState) FixedTick(dt float64) {}

func (s *FreeMovementState) Exit() {}

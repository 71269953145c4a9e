// Package player composes the character: body, forces, input, modules, and
// the state machine, stepped by the simulation loop.
package player

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/strideproj/stride/anim"
	"github.com/strideproj/stride/body"
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/forces"
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/input"
	"github.com/strideproj/stride/modules"
	"github.com/strideproj/stride/sim"
)

// The animation parameter driven toward 0 (idle) or 1 (moving).
const locomotionParam = "locomotion_speed"

// Options configures a Player. World, Body, and Device are required; the
// rest default to sensible no-ops.
type Options struct {
	Logger    *zap.Logger
	World     donburi.World
	Body      body.Body
	Camera    CameraRig
	Device    input.Device
	Forces    config.ForcesConfig
	Scheduler *sim.Scheduler
	Anim      anim.Sink
	Modules   []modules.Module
}

// Player is the composition root of the simulated character and the Host
// its modules see.
type Player struct {
	log    *zap.Logger
	world  donburi.World
	body   body.Body
	camera CameraRig
	device input.Device

	frame    input.Frame
	handler  *forces.Handler
	registry *modules.Registry
	anim     *anim.Params
	sched    *sim.Scheduler
	machine  *Machine

	yaw     float64
	started bool
}

func NewPlayer(o Options) *Player {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Camera == nil {
		o.Camera = FixedCamera{}
	}
	if o.Device == nil {
		o.Device = nullDevice{}
	}
	if o.Anim == nil {
		o.Anim = anim.Nop{}
	}
	if o.Scheduler == nil {
		o.Scheduler = sim.NewScheduler(0.1)
	}
	if o.Forces == (config.ForcesConfig{}) {
		o.Forces = config.Default().Forces
	}

	p := &Player{
		log:      o.Logger,
		world:    o.World,
		body:     o.Body,
		camera:   o.Camera,
		device:   o.Device,
		handler:  forces.NewHandler(o.Forces),
		registry: modules.NewRegistry(o.Modules...),
		anim:     anim.NewParams(o.Anim),
		sched:    o.Scheduler,
		machine:  NewMachine(o.Logger),
	}

	p.handler.SetKnockbackFunc(func(active bool) {
		events.KnockbackEvent.Publish(p.world, events.Knockback{Active: active})
	})
	p.machine.onTransition = func(from, to string) {
		events.StateChangedEvent.Publish(p.world, events.StateChanged{From: from, To: to})
	}
	return p
}

// Start validates the module list, installs every module once in order, and
// performs the one-time transition into FreeMovement. Runs at most once.
func (p *Player) Start() {
	if p.started {
		return
	}
	p.started = true

	p.registry.Validate(p.log)
	if err := p.registry.Install(p); err != nil {
		p.log.Error("module installation reported issues", zap.Error(err))
	}
	p.machine.SwitchState(NewFreeMovementState(p))
}

// Tick advances one rendered frame: latch input, integrate forces, tick the
// active state, then the modules, then flush animation params and events.
// A panic inside the frame is caught and converted into a warning so a
// single bad frame cannot take the loop down.
func (p *Player) Tick(dt float64) {
	defer p.guard("tick")

	p.frame.Latch(p.device.Sample())
	p.handler.Tick(dt, p.body.IsGrounded())
	p.machine.Tick(dt)
	for _, m := range p.registry.Modules() {
		if u, ok := m.(modules.Updater); ok {
			u.Update(p, dt)
		}
	}
	p.anim.Update(dt)
	events.Process(p.world)
}

// FixedTick advances one fixed physics step: scheduler timers first, then
// the active state's fixed hook.
func (p *Player) FixedTick(dt float64) {
	defer p.guard("fixed tick")

	p.sched.Advance(dt)
	p.machine.FixedTick(dt)
}

func (p *Player) guard(phase string) {
	if r := recover(); r != nil {
		p.log.Warn("panic suppressed at frame boundary",
			zap.String("phase", phase),
			zap.Any("panic", r))
	}
}

// ReturnToLocomotion is the generic recovery transition back to the default
// state, valid from anywhere.
func (p *Player) ReturnToLocomotion() {
	p.machine.SwitchState(NewFreeMovementState(p))
}

// StateName names the active state, empty before startup.
func (p *Player) StateName() string {
	if s := p.machine.Current(); s != nil {
		return s.Name()
	}
	return ""
}

// Move feeds a velocity plus accumulated forces into the body's move
// primitive for this frame.
func (p *Player) Move(motion gamemath.Vec3, dt float64) {
	p.body.Move(motion.Scale(dt), dt)
}

// FaceToward rotates the facing toward dir with exponential damping.
func (p *Player) FaceToward(dir gamemath.Vec3, rate, dt float64) {
	if dir.Horizontal().IsZero() {
		return
	}
	p.yaw = gamemath.RotateToward(p.yaw, dir.Yaw(), rate, dt)
}

// Yaw returns the current facing angle.
func (p *Player) Yaw() float64 {
	return p.yaw
}

// Host interface for modules.

func (p *Player) World() donburi.World       { return p.world }
func (p *Player) Logger() *zap.Logger        { return p.log }
func (p *Player) Forces() *forces.Handler    { return p.handler }
func (p *Player) Input() *input.Frame        { return &p.frame }
func (p *Player) Scheduler() *sim.Scheduler  { return p.sched }
func (p *Player) Modules() *modules.Registry { return p.registry }
func (p *Player) Position() gamemath.Vec3    { return p.body.Position() }
func (p *Player) Forward() gamemath.Vec3     { return gamemath.FromYaw(p.yaw) }

// nullDevice reads as "no input at all".
type nullDevice struct{}

func (nullDevice) Sample() input.Sample { return input.Sample{} }

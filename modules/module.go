// Package modules implements the character's pluggable behavior units and
// the typed registry they are resolved through. Every module is optional:
// consumers look one up, tolerate its absence, and degrade gracefully.
package modules

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/strideproj/stride/forces"
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/input"
	"github.com/strideproj/stride/sim"
)

// Host is the character as seen by its modules.
type Host interface {
	World() donburi.World
	Logger() *zap.Logger
	Forces() *forces.Handler
	Input() *input.Frame
	Scheduler() *sim.Scheduler
	Modules() *Registry

	Position() gamemath.Vec3
	Forward() gamemath.Vec3
}

// Module is an independently authored unit of configuration and behavior
// attached to the character. Install runs exactly once at character startup,
// in registration order; it may start scheduler tasks and subscribe to
// events.
type Module interface {
	Name() string
	Install(h Host) error
}

// Updater is implemented by modules that want a per-frame tick. It runs
// after the active state's tick.
type Updater interface {
	Update(h Host, dt float64)
}

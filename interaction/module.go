package interaction

import (
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/input"
	"github.com/strideproj/stride/modules"
)

// Module plugs the detector into the character's module loop: it translates
// latched input edges into cycling and interaction, then runs detection and
// the hold timer every frame.
type Module struct {
	detector *Detector
	host     modules.Host
}

func NewModule(cfg config.InteractionConfig) *Module {
	return &Module{detector: NewDetector(cfg)}
}

func (*Module) Name() string { return "interaction" }

func (m *Module) Install(h modules.Host) error {
	m.host = h
	return nil
}

// Update runs once per frame after the active state's tick.
func (m *Module) Update(h modules.Host, dt float64) {
	in := h.Input()

	if in.JustPressed(input.ActionCycleNext) {
		m.detector.Cycle(1)
	}
	if in.JustPressed(input.ActionCyclePrev) {
		m.detector.Cycle(-1)
	}

	m.detector.Update(h)

	if in.JustPressed(input.ActionInteract) {
		m.detector.BeginInteract(h)
	}
	m.detector.TickHold(h, dt, in.Pressed(input.ActionInteract))
}

// Detector exposes the underlying detector for focus queries and progress
// observation.
func (m *Module) Detector() *Detector {
	return m.detector
}

// SetEnabled toggles detection for the whole module.
func (m *Module) SetEnabled(enabled bool) {
	m.detector.SetEnabled(m.host, enabled)
}

package modules

import "github.com/strideproj/stride/config"

// Stamina funds sprinting and dodging. Movement states treat it as optional:
// when absent, sprint and dodge are free.
type Stamina struct {
	resource
	sprintDrain float64
	dodgeCost   float64
	cancelRegen func()
}

func NewStamina(cfg config.ResourceConfig, sprintDrain, dodgeCost float64) *Stamina {
	return &Stamina{
		resource:    newResource(cfg),
		sprintDrain: sprintDrain,
		dodgeCost:   dodgeCost,
	}
}

func (*Stamina) Name() string { return "stamina" }

func (m *Stamina) Install(h Host) error {
	m.cancelRegen = h.Scheduler().Every(m.regenSlice)
	return nil
}

// DrainSprint pays for dt seconds of sprinting. False means the pool is
// exhausted and the caller should fall back to walk speed.
func (m *Stamina) DrainSprint(dt float64) bool {
	return m.Spend(m.sprintDrain * dt)
}

// SpendDodge pays for one dodge.
func (m *Stamina) SpendDodge() bool {
	return m.Spend(m.dodgeCost)
}

package modules

import "github.com/strideproj/stride/config"

// Mana is a regenerating casting pool. Nothing in the core spends it; it
// exists for ability modules layered on top.
type Mana struct {
	resource
	cancelRegen func()
}

func NewMana(cfg config.ResourceConfig) *Mana {
	return &Mana{resource: newResource(cfg)}
}

func (*Mana) Name() string { return "mana" }

func (m *Mana) Install(h Host) error {
	m.cancelRegen = h.Scheduler().Every(m.regenSlice)
	return nil
}

package modules

import (
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
)

// Progression accumulates XP and converts it into levels. The total XP
// required for the next level grows geometrically.
type Progression struct {
	cfg    config.ProgressionConfig
	host   Host
	xp     float64
	level  int
	nextAt float64
}

func NewProgression(cfg config.ProgressionConfig) *Progression {
	return &Progression{
		cfg:    cfg,
		level:  1,
		nextAt: cfg.BaseXP,
	}
}

func (*Progression) Name() string { return "progression" }

func (m *Progression) Install(h Host) error {
	m.host = h
	return nil
}

// GrantXP adds experience, emitting one LevelUp event per level gained.
func (m *Progression) GrantXP(amount float64) {
	if amount <= 0 {
		return
	}
	m.xp += amount
	for m.xp >= m.nextAt {
		m.level++
		m.nextAt *= m.cfg.Growth
		events.LevelUpEvent.Publish(m.host.World(), events.LevelUp{Level: m.level})
	}
}

func (m *Progression) XP() float64 { return m.xp }
func (m *Progression) Level() int  { return m.level }

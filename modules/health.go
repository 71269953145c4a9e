package modules

import (
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/gamemath"
)

// Health tracks hit points. Damage can carry a knockback impulse, which is
// routed into the forces handler.
type Health struct {
	resource
	host        Host
	dead        bool
	cancelRegen func()
}

func NewHealth(cfg config.ResourceConfig) *Health {
	return &Health{resource: newResource(cfg)}
}

func (*Health) Name() string { return "health" }

func (m *Health) Install(h Host) error {
	m.host = h
	m.cancelRegen = h.Scheduler().Every(func(slice float64) {
		if m.dead {
			return
		}
		m.regenSlice(slice)
	})
	return nil
}

// Damage applies amount and the optional knockback impulse. Returns false
// without side effects when the character is already dead or amount is not
// positive.
func (m *Health) Damage(amount float64, knockback gamemath.Vec3) bool {
	if m.dead || amount <= 0 {
		return false
	}
	m.current -= amount
	m.sinceSpend = 0
	if m.current < 0 {
		m.current = 0
	}
	if !knockback.IsZero() {
		m.host.Forces().AddForce(knockback)
	}
	events.DamageTakenEvent.Publish(m.host.World(), events.DamageTaken{
		Amount:    amount,
		Remaining: m.current,
	})
	if m.current == 0 {
		m.dead = true
		events.DiedEvent.Publish(m.host.World(), events.Died{})
	}
	return true
}

func (m *Health) Alive() bool { return !m.dead }

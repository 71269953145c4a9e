package player

import "go.uber.org/zap"

// State is one transient behavior unit of the character. States are created
// fresh on every transition and dropped on the way out; they own nothing
// that outlives Exit.
type State interface {
	Name() string
	Enter()
	Tick(dt float64)
	FixedTick(dt float64)
	Exit()
}

// Machine holds the single active state. The state set is open: anything
// implementing State can be switched to.
type Machine struct {
	current State
	log     *zap.Logger

	// onTransition observes every completed switch, including same-type
	// re-entries. from is empty for the startup transition.
	onTransition func(from, to string)
}

func NewMachine(log *zap.Logger) *Machine {
	return &Machine{log: log}
}

// Current returns the active state, nil before startup.
func (m *Machine) Current() State {
	return m.current
}

// SwitchState exits the active state and enters next. There is no
// short-circuit for switching to a state of the same type: Exit and Enter
// always run, in that order. A nil next is a configuration error; it is
// logged and the active state stays in place.
func (m *Machine) SwitchState(next State) {
	if next == nil {
		m.log.Error("nil state passed to SwitchState; keeping current state")
		return
	}
	from := ""
	if m.current != nil {
		from = m.current.Name()
		m.current.Exit()
	}
	m.current = next
	if m.onTransition != nil {
		m.onTransition(from, next.Name())
	}
	next.Enter()
}

// Tick routes the frame tick to the active state only.
func (m *Machine) Tick(dt float64) {
	if m.current != nil {
		m.current.Tick(dt)
	}
}

// FixedTick routes a fixed physics step to the active state only.
func (m *Machine) FixedTick(dt float64) {
	if m.current != nil {
		m.current.FixedTick(dt)
	}
}

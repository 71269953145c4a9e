package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type probeState struct {
	name string
	log  *[]string
}

func (s *probeState) Name() string { return s.name }

func (s *probeState) Enter() { *s.log = append(*s.log, "enter "+s.name) }

func (s *probeState) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func (s *probeState) Tick(dt float64) { *s.log = append(*s.log, "tick "+s.name) }

func (s *probeState) FixedTick(dt float64) {}

func TestMachineExitRunsBeforeEnter(t *testing.T) {
	var log []string
	m := NewMachine(zaptest.NewLogger(t))

	m.SwitchState(&probeState{name: "a", log: &log})
	m.SwitchState(&probeState{name: "b", log: &log})

	require.Equal(t, []string{"enter a", "exit a", "enter b"}, log)
}

func TestMachineSameTypeTransitionReenters(t *testing.T) {
	var log []string
	m := NewMachine(zaptest.NewLogger(t))

	m.SwitchState(&probeState{name: "a", log: &log})
	m.SwitchState(&probeState{name: "a", log: &log})

	// No short-circuit: the old instance exits, the new one enters.
	require.Equal(t, []string{"enter a", "exit a", "enter a"}, log)
}

func TestMachineNilNextKeepsCurrent(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	var log []string
	m := NewMachine(zap.New(core))

	a := &probeState{name: "a", log: &log}
	m.SwitchState(a)
	m.SwitchState(nil)

	assert.Same(t, State(a), m.Current())
	assert.Equal(t, []string{"enter a"}, log, "neither Exit nor Enter may run")
	assert.Equal(t, 1, logs.Len())
}

func TestMachineTicksActiveStateOnly(t *testing.T) {
	var log []string
	m := NewMachine(zaptest.NewLogger(t))

	m.Tick(0.1) // no state yet: no-op
	m.FixedTick(0.02)

	m.SwitchState(&probeState{name: "a", log: &log})
	m.SwitchState(&probeState{name: "b", log: &log})
	m.Tick(0.1)

	require.Equal(t, []string{"enter a", "exit a", "enter b", "tick b"}, log)
}

func TestMachineTransitionObserverSeesEverySwitch(t *testing.T) {
	var log []string
	var seen [][2]string
	m := NewMachine(zaptest.NewLogger(t))
	m.onTransition = func(from, to string) {
		seen = append(seen, [2]string{from, to})
	}

	m.SwitchState(&probeState{name: "a", log: &log})
	m.SwitchState(&probeState{name: "b", log: &log})
	m.SwitchState(&probeState{name: "b", log: &log})

	require.Equal(t, [][2]string{{"", "a"}, {"a", "b"}, {"b", "b"}}, seen)
}

// chainState transitions elsewhere from inside Enter, the shape of a
// recovery bounce. The machine must end up in the final state.
type chainState struct {
	m    *Machine
	next State
}

func (s *chainState) Name() string { return "chain" }

func (s *chainState) Enter() {
	if s.next != nil {
		s.m.SwitchState(s.next)
	}
}

func (s *chainState) Tick(dt float64)      {}
func (s *chainState) FixedTick(dt float64) {}
func (s *chainState) Exit()                {}

func TestMachineTransitionFromEnterLandsOnFinalState(t *testing.T) {
	var log []string
	m := NewMachine(zaptest.NewLogger(t))
	final := &probeState{name: "final", log: &log}

	m.SwitchState(&chainState{m: m, next: final})

	assert.Same(t, State(final), m.Current())
	assert.Equal(t, []string{"enter final"}, log)
}

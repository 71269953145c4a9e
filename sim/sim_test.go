package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingStepper struct {
	fixed []float64
	ticks []float64
	order []string
}

func (c *countingStepper) FixedTick(dt float64) {
	c.fixed = append(c.fixed, dt)
	c.order = append(c.order, "fixed")
}

func (c *countingStepper) Tick(dt float64) {
	c.ticks = append(c.ticks, dt)
	c.order = append(c.order, "tick")
}

func TestLoopFixedBeforeTick(t *testing.T) {
	s := &countingStepper{}
	l := NewLoop(s, 30, 60, zap.NewNop())

	l.Advance(1.0 / 30)

	// Two fixed steps fit into one 30 Hz frame at a 60 Hz fixed rate, and
	// both run before the frame's Tick.
	assert.Equal(t, []string{"fixed", "fixed", "tick"}, s.order)
	assert.Len(t, s.ticks, 1)
}

func TestLoopAccumulatorCarriesRemainder(t *testing.T) {
	s := &countingStepper{}
	l := NewLoop(s, 50, 60, zap.NewNop())

	// 50 Hz frames against a 60 Hz fixed step: fixed time must track frame
	// time to within one fixed step, never drifting further apart.
	total := 0.0
	for i := 0; i < 600; i++ {
		l.Advance(1.0 / 50)
		total += 1.0 / 50
		fixedTime := float64(len(s.fixed)) / 60
		assert.InDelta(t, total, fixedTime, 1.0/60+1e-9)
	}
	assert.Len(t, s.ticks, 600)
}

func TestSchedulerSliceGranularity(t *testing.T) {
	sched := NewScheduler(0.1)
	var slices []float64
	sched.Every(func(slice float64) { slices = append(slices, slice) })

	// 0.25 s in small steps: only two full slices elapse.
	for i := 0; i < 25; i++ {
		sched.Advance(0.01)
	}
	assert.Equal(t, []float64{0.1, 0.1}, slices)
}

func TestSchedulerCancelDuringRun(t *testing.T) {
	sched := NewScheduler(0.1)
	runs := 0
	var cancel func()
	cancel = sched.Every(func(slice float64) {
		runs++
		cancel()
	})

	sched.Advance(0.5)
	assert.Equal(t, 1, runs, "self-cancel stops further slices in the same pass")

	sched.Advance(0.5)
	assert.Equal(t, 1, runs)
}

func TestSchedulerMultipleTasks(t *testing.T) {
	sched := NewScheduler(0.1)
	a, b := 0, 0
	sched.Every(func(float64) { a++ })
	sched.Every(func(float64) { b++ })

	sched.Advance(0.3)
	assert.Equal(t, 3, a)
	assert.Equal(t, 3, b)
}

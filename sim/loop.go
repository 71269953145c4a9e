// Package sim drives the single-threaded cooperative simulation: a
// fixed-timestep loop and a slice-based timer scheduler.
package sim

import (
	"time"

	"go.uber.org/zap"
)

// Stepper is stepped by the loop: FixedTick runs zero or more times per
// rendered frame at the fixed rate, always before that frame's Tick.
type Stepper interface {
	FixedTick(dt float64)
	Tick(dt float64)
}

// Loop steps a Stepper in real time at a configured frame rate, sub-stepping
// FixedTick with an accumulator.
type Loop struct {
	stepper   Stepper
	frameRate int
	fixedDt   float64
	acc       float64

	log      *zap.Logger
	stopChan chan struct{}
}

func NewLoop(stepper Stepper, frameRate, fixedRate int, log *zap.Logger) *Loop {
	return &Loop{
		stepper:   stepper,
		frameRate: frameRate,
		fixedDt:   1 / float64(fixedRate),
		log:       log,
		stopChan:  make(chan struct{}),
	}
}

// Run blocks, stepping the simulation until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.frameRate))
	defer ticker.Stop()

	l.log.Info("simulation loop started", zap.Int("frame_rate", l.frameRate))

	frameDt := 1 / float64(l.frameRate)
	for {
		select {
		case <-l.stopChan:
			l.log.Info("simulation loop stopped")
			return
		case <-ticker.C:
			l.Advance(frameDt)
		}
	}
}

// Stop shuts the loop down.
func (l *Loop) Stop() {
	close(l.stopChan)
}

// Advance steps one rendered frame of the given duration. Exposed so hosts
// and tests can drive the simulation synchronously without wall-clock time.
func (l *Loop) Advance(frameDt float64) {
	l.acc += frameDt
	for l.acc >= l.fixedDt {
		l.stepper.FixedTick(l.fixedDt)
		l.acc -= l.fixedDt
	}
	l.stepper.Tick(frameDt)
}

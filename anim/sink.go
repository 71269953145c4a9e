// Package anim is the presentation boundary: the simulation writes float
// parameters and triggers into a Sink and never reads anything back.
package anim

// Sink receives animation parameters and one-shot triggers.
type Sink interface {
	SetFloat(name string, value float64)
	Trigger(name string)
}

// Nop discards everything. Used by headless hosts and tests that don't
// assert on animation output.
type Nop struct{}

func (Nop) SetFloat(string, float64) {}
func (Nop) Trigger(string)           {}

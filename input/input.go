// Package input models the latched logical input surface of the simulation.
// Device binding is out of scope; hosts feed Samples from wherever they like.
package input

import "github.com/strideproj/stride/gamemath"

// ActionID represents a logical game action.
type ActionID int

const (
	ActionJump ActionID = iota
	ActionDodge
	ActionSprint
	ActionInteract
	ActionCycleNext
	ActionCyclePrev
	ActionCount // Must be last - used for array sizing
)

// Sample is one raw reading of every action plus the movement axis,
// produced by a Device once per frame.
type Sample struct {
	Buttons [ActionCount]bool
	Move    gamemath.Vec2
}

// Device supplies one Sample per simulation frame.
type Device interface {
	Sample() Sample
}

// Frame stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames.
type Frame struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
	move     gamemath.Vec2
}

// Latch rotates the current sample into the previous slot and records a new
// one. Called exactly once per frame, before any state ticks.
func (f *Frame) Latch(s Sample) {
	f.previous = f.current
	f.current = s.Buttons
	f.move = s.Move
}

// Pressed reports the level state of an action this frame.
func (f *Frame) Pressed(a ActionID) bool {
	return f.current[a]
}

// JustPressed reports a rising edge: pressed this frame, not the previous.
func (f *Frame) JustPressed(a ActionID) bool {
	return f.current[a] && !f.previous[a]
}

// JustReleased reports a falling edge.
func (f *Frame) JustReleased(a ActionID) bool {
	return !f.current[a] && f.previous[a]
}

// Move returns this frame's movement axis.
func (f *Frame) Move() gamemath.Vec2 {
	return f.move
}

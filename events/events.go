// Package events defines the typed gameplay event topics of the simulation.
// Publishing enqueues; delivery happens when the owner of the world calls
// Process, once per frame, so every publish is delivered at most once and
// subscribers may unsubscribe without corrupting an in-flight dispatch.
package events

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// StateChanged is published on every state machine transition.
type StateChanged struct {
	From string // empty on the initial transition
	To   string
}

// Knockback is published when external impulses start affecting the character
// (Active true) and when the accumulated impulse has decayed away (Active
// false). Pathing/AI collaborators gate themselves on it.
type Knockback struct {
	Active bool
}

// FocusChanged is published when the detector's focused interactable changes
// identity. Zero UUIDs stand for "nothing focused".
type FocusChanged struct {
	Previous uuid.UUID
	Current  uuid.UUID
	Prompt   string // UI description of the new focus
}

// InteractionPerformed is published after a successful interaction.
type InteractionPerformed struct {
	Target uuid.UUID
	Prompt string
}

// HoldProgress reports hold-to-interact progress in [0, 1]. A cancelled hold
// reports exactly one final 0.
type HoldProgress struct {
	Target   uuid.UUID
	Progress float64
}

// DamageTaken is published by the health module when damage lands.
type DamageTaken struct {
	Amount    float64
	Remaining float64
}

// Died is published once when health reaches zero.
type Died struct{}

// LevelUp is published by the progression module on each level gained.
type LevelUp struct {
	Level int
}

var (
	StateChangedEvent         = devents.NewEventType[StateChanged]()
	KnockbackEvent            = devents.NewEventType[Knockback]()
	FocusChangedEvent         = devents.NewEventType[FocusChanged]()
	InteractionPerformedEvent = devents.NewEventType[InteractionPerformed]()
	HoldProgressEvent         = devents.NewEventType[HoldProgress]()
	DamageTakenEvent          = devents.NewEventType[DamageTaken]()
	DiedEvent                 = devents.NewEventType[Died]()
	LevelUpEvent              = devents.NewEventType[LevelUp]()
)

// Process delivers every queued event on the world. Called at the end of each
// simulation frame.
func Process(w donburi.World) {
	devents.ProcessAllEvents(w)
}

package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// InteractableData marks a world entity the player can interact with. The
// entity's lifecycle belongs to the world; the detector only ever holds a
// non-owning reference to the currently focused one.
type InteractableData struct {
	ID     uuid.UUID
	Prompt string // UI description shown while focused

	Priority     int
	Range        float64 // Custom detection range; 0 falls back to the module default
	HoldDuration float64 // Seconds the interact input must be held; <= 0 is instant
	Enabled      bool

	// CanInteract gates execution. Nil means always eligible.
	CanInteract func() bool
	// OnInteract runs on successful execution.
	OnInteract func()

	// Focus notifications, fired only on identity change.
	OnFocusGained func()
	OnFocusLost   func()
}

// EffectiveRange returns the per-interactable detection range.
func (d *InteractableData) EffectiveRange(defaultRange float64) float64 {
	if d.Range > 0 {
		return d.Range
	}
	return defaultRange
}

var Interactable = donburi.NewComponentType[InteractableData]()

package interaction

import (
	"github.com/strideproj/stride/components"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/modules"
)

// BeginInteract handles an interact input edge. Instant interactables
// execute immediately; hold interactables start the hold timer. Returns
// false when nothing happened: no focus, failed validation, or a hold
// already running.
func (d *Detector) BeginInteract(h modules.Host) bool {
	if !d.enabled || d.hold.active {
		return false
	}
	data, ok := d.Focused()
	if !ok {
		return false
	}
	if data.CanInteract != nil && !data.CanInteract() {
		return false
	}

	if data.HoldDuration <= 0 {
		d.execute(h, data)
		return true
	}

	d.hold.active = true
	d.hold.elapsed = 0
	d.hold.target = d.focused
	return true
}

// TickHold advances a running hold by dt. held is the level state of the
// interact input; releasing it, losing the target, or disabling the detector
// cancels the hold with a single progress-0 report.
func (d *Detector) TickHold(h modules.Host, dt float64, held bool) {
	if !d.hold.active {
		return
	}
	if !held || d.focused != d.hold.target || !d.hold.target.Valid() {
		d.cancelHold(h)
		return
	}

	data := components.Interactable.Get(d.hold.target)
	d.hold.elapsed += dt
	progress := d.hold.elapsed / data.HoldDuration
	if progress >= 1 {
		d.hold.active = false
		d.reportProgress(h, data, 1)
		d.execute(h, data)
		return
	}
	d.reportProgress(h, data, progress)
}

// HoldActive reports whether a hold is in flight.
func (d *Detector) HoldActive() bool {
	return d.hold.active
}

func (d *Detector) cancelHold(h modules.Host) {
	if !d.hold.active {
		return
	}
	d.hold.active = false
	var data *components.InteractableData
	if d.hold.target != nil && d.hold.target.Valid() {
		data = components.Interactable.Get(d.hold.target)
	}
	d.hold.target = nil
	d.reportProgress(h, data, 0)
}

func (d *Detector) execute(h modules.Host, data *components.InteractableData) {
	if data.OnInteract != nil {
		data.OnInteract()
	}
	events.InteractionPerformedEvent.Publish(h.World(), events.InteractionPerformed{
		Target: data.ID,
		Prompt: data.Prompt,
	})
}

func (d *Detector) reportProgress(h modules.Host, data *components.InteractableData, progress float64) {
	if d.OnHoldProgress != nil {
		d.OnHoldProgress(progress)
	}
	e := events.HoldProgress{Progress: progress}
	if data != nil {
		e.Target = data.ID
	}
	events.HoldProgressEvent.Publish(h.World(), e)
}

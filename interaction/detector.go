// Package interaction finds candidate interactables around the character,
// ranks them, exposes a single focused target with cycling among ties, and
// runs instant or hold-to-interact execution against it.
package interaction

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/strideproj/stride/components"
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/modules"
)

// candidate is an ephemeral per-frame tuple; the list is rebuilt every
// detection tick and never persisted.
type candidate struct {
	entry *donburi.Entry
	data  *components.InteractableData
	dist  float64
}

// Detector performs the per-frame spatial selection and owns the hold timer.
type Detector struct {
	cfg      config.InteractionConfig
	cosAngle float64
	enabled  bool

	cycleIndex int
	cycleDelta int
	focused    *donburi.Entry
	list       []candidate

	hold struct {
		active  bool
		elapsed float64
		target  *donburi.Entry
	}

	// OnHoldProgress observes hold progress in [0, 1]. A cancelled hold
	// reports exactly one trailing 0.
	OnHoldProgress func(progress float64)
}

func NewDetector(cfg config.InteractionConfig) *Detector {
	return &Detector{
		cfg:      cfg,
		cosAngle: math.Cos(cfg.DetectionAngle * math.Pi / 180),
		enabled:  true,
	}
}

// Enabled reports whether detection is running.
func (d *Detector) Enabled() bool { return d.enabled }

// SetEnabled toggles detection. Disabling clears the focus (firing the loss
// notification once) and cancels any hold in flight.
func (d *Detector) SetEnabled(h modules.Host, enabled bool) {
	if d.enabled == enabled {
		return
	}
	d.enabled = enabled
	if !enabled {
		d.cancelHold(h)
		d.setFocus(h, nil)
		d.list = d.list[:0]
	}
}

// Cycle queues a focus-cycling step (+1 / -1) to apply on the next update,
// wrapping around both directions.
func (d *Detector) Cycle(delta int) {
	d.cycleDelta += delta
}

// Update rebuilds the candidate list, applies cycling, and resolves the
// focused interactable, notifying on identity changes only.
func (d *Detector) Update(h modules.Host) {
	if !d.enabled {
		return
	}

	d.gather(h)

	if len(d.list) == 0 {
		d.cycleIndex = 0
		d.cycleDelta = 0
		d.setFocus(h, nil)
		return
	}

	// Clamp first: the index resets whenever it runs off the end, e.g.
	// after interactables disappear.
	if d.cycleIndex >= len(d.list) || d.cycleIndex < 0 {
		d.cycleIndex = 0
	}
	if d.cycleDelta != 0 {
		n := len(d.list)
		d.cycleIndex = ((d.cycleIndex+d.cycleDelta)%n + n) % n
		d.cycleDelta = 0
	}

	d.setFocus(h, d.list[d.cycleIndex].entry)
}

// gather runs the broad phase and filters, then ranks by priority descending
// and distance ascending. Equal candidates keep registration order.
//
// The broad phase over-fetches at twice the largest configured range so
// custom per-interactable ranges above the module default are not missed;
// the exact per-candidate range check follows.
func (d *Detector) gather(h modules.Host) {
	pos := h.Position()
	fwd := h.Forward()
	world := h.World()

	maxRange := d.cfg.DefaultRange
	components.Interactable.Each(world, func(e *donburi.Entry) {
		if r := components.Interactable.Get(e).Range; r > maxRange {
			maxRange = r
		}
	})
	broadRange := maxRange * 2

	d.list = d.list[:0]
	components.Interactable.Each(world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		data := components.Interactable.Get(e)
		if !data.Enabled {
			return
		}
		to := components.Transform.Get(e).Position.Sub(pos)
		dist := to.Len()
		if dist > broadRange {
			return
		}
		if dist > data.EffectiveRange(d.cfg.DefaultRange) {
			return
		}
		if dist > 0 && fwd.Dot(to.Scale(1/dist)) < d.cosAngle {
			return
		}
		d.list = append(d.list, candidate{entry: e, data: data, dist: dist})
	})

	sort.SliceStable(d.list, func(i, j int) bool {
		if d.list[i].data.Priority != d.list[j].data.Priority {
			return d.list[i].data.Priority > d.list[j].data.Priority
		}
		return d.list[i].dist < d.list[j].dist
	})
}

// Focused returns the currently focused interactable, if any.
func (d *Detector) Focused() (*components.InteractableData, bool) {
	if d.focused == nil || !d.focused.Valid() {
		return nil, false
	}
	return components.Interactable.Get(d.focused), true
}

// Candidates returns how many interactables passed this frame's filters.
func (d *Detector) Candidates() int {
	return len(d.list)
}

func (d *Detector) setFocus(h modules.Host, entry *donburi.Entry) {
	if entry == d.focused {
		return
	}
	prev := d.focused
	d.focused = entry

	if d.hold.active && d.hold.target != entry {
		d.cancelHold(h)
	}

	var prevID, curID uuid.UUID
	var prompt string
	if prev != nil && prev.Valid() {
		data := components.Interactable.Get(prev)
		prevID = data.ID
		if data.OnFocusLost != nil {
			data.OnFocusLost()
		}
	}
	if entry != nil {
		data := components.Interactable.Get(entry)
		curID = data.ID
		prompt = data.Prompt
		if data.OnFocusGained != nil {
			data.OnFocusGained()
		}
	}
	events.FocusChangedEvent.Publish(h.World(), events.FocusChanged{
		Previous: prevID,
		Current:  curID,
		Prompt:   prompt,
	})
}

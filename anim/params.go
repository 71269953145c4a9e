package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Params smooths float parameters toward their targets over a damp time
// before forwarding them to the sink, so downstream blending never sees an
// instantaneous jump. Retargeting mid-flight restarts the tween from the
// current value.
type Params struct {
	sink   Sink
	blends map[string]*blend
}

type blend struct {
	current float32
	target  float32
	tween   *gween.Tween
}

func NewParams(sink Sink) *Params {
	return &Params{
		sink:   sink,
		blends: make(map[string]*blend),
	}
}

// SetTarget steers a parameter toward target over dampTime seconds.
func (p *Params) SetTarget(name string, target, dampTime float64) {
	b, ok := p.blends[name]
	if !ok {
		b = &blend{}
		p.blends[name] = b
	}
	t := float32(target)
	if b.target == t && b.tween != nil {
		return
	}
	b.target = t
	if dampTime <= 0 {
		b.current = t
		b.tween = nil
		return
	}
	b.tween = gween.New(b.current, t, float32(dampTime), ease.Linear)
}

// Trigger forwards a one-shot trigger unchanged.
func (p *Params) Trigger(name string) {
	p.sink.Trigger(name)
}

// Update advances all in-flight blends and pushes their values to the sink.
func (p *Params) Update(dt float64) {
	for name, b := range p.blends {
		if b.tween != nil {
			cur, done := b.tween.Update(float32(dt))
			b.current = cur
			if done {
				b.tween = nil
			}
		}
		p.sink.SetFloat(name, float64(b.current))
	}
}

// Value returns the current smoothed value of a parameter.
func (p *Params) Value(name string) float64 {
	if b, ok := p.blends[name]; ok {
		return float64(b.current)
	}
	return 0
}

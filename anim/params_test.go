package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	floats   map[string]float64
	triggers []string
}

func newRecorder() *recorder {
	return &recorder{floats: make(map[string]float64)}
}

func (r *recorder) SetFloat(name string, v float64) { r.floats[name] = v }
func (r *recorder) Trigger(name string)             { r.triggers = append(r.triggers, name) }

func TestParamsRampNotInstant(t *testing.T) {
	rec := newRecorder()
	p := NewParams(rec)

	p.SetTarget("locomotion", 1, 0.2)
	p.Update(0.05)
	mid := rec.floats["locomotion"]
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	for i := 0; i < 20; i++ {
		p.Update(0.05)
	}
	assert.InDelta(t, 1.0, rec.floats["locomotion"], 1e-4)
}

func TestParamsRetargetFromCurrent(t *testing.T) {
	rec := newRecorder()
	p := NewParams(rec)

	p.SetTarget("locomotion", 1, 0.2)
	p.Update(0.1)
	before := rec.floats["locomotion"]

	p.SetTarget("locomotion", 0, 0.2)
	p.Update(0.01)
	after := rec.floats["locomotion"]
	assert.Less(t, after, before, "retarget heads back down from the midpoint")
	assert.Greater(t, after, 0.0)
}

func TestParamsZeroDampTimeIsImmediate(t *testing.T) {
	rec := newRecorder()
	p := NewParams(rec)
	p.SetTarget("locomotion", 1, 0)
	p.Update(0)
	assert.Equal(t, 1.0, rec.floats["locomotion"])
}

func TestTriggerPassthrough(t *testing.T) {
	rec := newRecorder()
	p := NewParams(rec)
	p.Trigger("jump")
	p.Trigger("land")
	assert.Equal(t, []string{"jump", "land"}, rec.triggers)
}

package modules

import "github.com/strideproj/stride/config"

// resource is one regenerating pool. Regeneration runs as a scheduler task
// in fixed slices and pauses for RegenDelay seconds after each spend.
type resource struct {
	cfg        config.ResourceConfig
	current    float64
	sinceSpend float64
}

func newResource(cfg config.ResourceConfig) resource {
	return resource{
		cfg:        cfg,
		current:    cfg.Max,
		sinceSpend: cfg.RegenDelay,
	}
}

func (r *resource) Current() float64 { return r.current }
func (r *resource) Max() float64     { return r.cfg.Max }

// Spend consumes amount if the pool covers it. Insufficient funds are a
// validation failure: nothing happens and false is returned.
func (r *resource) Spend(amount float64) bool {
	if amount < 0 || amount > r.current {
		return false
	}
	r.current -= amount
	r.sinceSpend = 0
	return true
}

// regenSlice advances the regeneration timer by one scheduler slice.
func (r *resource) regenSlice(slice float64) {
	r.sinceSpend += slice
	if r.sinceSpend < r.cfg.RegenDelay {
		return
	}
	r.current += r.cfg.RegenPerSecond * slice
	if r.current > r.cfg.Max {
		r.current = r.cfg.Max
	}
}

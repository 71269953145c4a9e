package sim

// Scheduler advances cooperative repeating tasks in fixed wall-clock slices
// (regeneration timers and the like) instead of every frame. It is driven
// from the fixed tick and shares the simulation thread, so tasks may mutate
// simulation state freely.
type Scheduler struct {
	slice float64
	acc   float64
	tasks []*task
}

type task struct {
	fn        func(slice float64)
	cancelled bool
}

func NewScheduler(slice float64) *Scheduler {
	return &Scheduler{slice: slice}
}

// Every registers fn to run once per elapsed slice. The returned cancel
// function is safe to call from inside fn.
func (s *Scheduler) Every(fn func(slice float64)) (cancel func()) {
	t := &task{fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// Advance accumulates dt and runs every live task once per full slice
// elapsed. Tasks cancelled mid-run are skipped for the rest of the pass.
func (s *Scheduler) Advance(dt float64) {
	s.acc += dt
	for s.acc >= s.slice {
		s.acc -= s.slice
		live := s.tasks[:0]
		for _, t := range s.tasks {
			if t.cancelled {
				continue
			}
			t.fn(s.slice)
			if !t.cancelled {
				live = append(live, t)
			}
		}
		s.tasks = live
	}
}

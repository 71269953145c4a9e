package modules

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Registry holds the character's modules in registration order. The list is
// fixed at configuration time; a type index is built once installation
// completes and is read-only afterward.
type Registry struct {
	list  []Module
	index map[reflect.Type]Module
}

func NewRegistry(mods ...Module) *Registry {
	return &Registry{list: mods}
}

// Modules returns the ordered module list.
func (r *Registry) Modules() []Module {
	return r.list
}

// Install runs every module's Install hook in registration order, then
// builds the type index. A failing module is reported but does not stop the
// remaining installs; the joined error is advisory for the caller to log.
func (r *Registry) Install(h Host) error {
	var errs []error
	for _, m := range r.list {
		if err := m.Install(h); err != nil {
			errs = append(errs, fmt.Errorf("installing module %q: %w", m.Name(), err))
		}
	}
	r.buildIndex()
	return errors.Join(errs...)
}

func (r *Registry) buildIndex() {
	r.index = make(map[reflect.Type]Module, len(r.list))
	for _, m := range r.list {
		t := reflect.TypeOf(m)
		if _, dup := r.index[t]; !dup {
			r.index[t] = m
		}
	}
}

// Validate flags suspicious configurations: an empty module list and
// duplicate module types. Advisory only; startup proceeds regardless.
func (r *Registry) Validate(log *zap.Logger) {
	if len(r.list) == 0 {
		log.Warn("module registry is empty; states will run with no tuning modules")
		return
	}
	seen := make(map[reflect.Type]string, len(r.list))
	for _, m := range r.list {
		t := reflect.TypeOf(m)
		if first, dup := seen[t]; dup {
			log.Warn("duplicate module type registered; lookups resolve to the first",
				zap.String("type", t.String()),
				zap.String("first", first),
				zap.String("duplicate", m.Name()))
			continue
		}
		seen[t] = m.Name()
	}
}

// Get resolves the first registered module of concrete type T. It never
// fails hard: absence is an ordinary result every caller must handle.
//
// Before the index exists (mid-install lookups between modules) it falls
// back to a deterministic first-match scan.
func Get[T Module](r *Registry) (T, bool) {
	var zero T
	if r.index != nil {
		if t := reflect.TypeOf(zero); t != nil {
			m, ok := r.index[t]
			if !ok {
				return zero, false
			}
			return m.(T), true
		}
	}
	for _, m := range r.list {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	return zero, false
}

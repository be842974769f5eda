// Package module defines the contract every displayable dashboard subsystem
// satisfies. The control loop and renderer work against Module so new kinds
// of subsystem can be added without touching the loop.
package module

// SeriesPoint is one labelled bar of a module's chart data.
type SeriesPoint struct {
	Label string
	Value int64
}

// Module is the capability shared by the alarm statistics and the log store.
//
// All methods are pure accessors. Series returns a fresh snapshot on every
// call and must never mutate the module; modules without chart data return
// an empty slice.
type Module interface {
	ID() int
	Name() string
	Description() string
	Series() []SeriesPoint
}

// Header is the static metadata of a module, used for panel titles.
type Header struct {
	ID          int
	Name        string
	Description string
}

// HeaderOf extracts the metadata of m.
func HeaderOf(m Module) Header {
	return Header{ID: m.ID(), Name: m.Name(), Description: m.Description()}
}

// Registry holds modules in registration order.
type Registry struct {
	modules []Module
}

// NewRegistry creates a registry containing mods in the given order.
func NewRegistry(mods ...Module) *Registry {
	r := &Registry{}
	for _, m := range mods {
		r.Register(m)
	}
	return r
}

// Register appends m. A module whose ID is already registered replaces the
// earlier one in place.
func (r *Registry) Register(m Module) {
	for i, existing := range r.modules {
		if existing.ID() == m.ID() {
			r.modules[i] = m
			return
		}
	}
	r.modules = append(r.modules, m)
}

// Lookup returns the module with the given id.
func (r *Registry) Lookup(id int) (Module, bool) {
	for _, m := range r.modules {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// Modules returns the registered modules in order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Headers returns the metadata of every registered module in order.
func (r *Registry) Headers() []Header {
	out := make([]Header, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, HeaderOf(m))
	}
	return out
}

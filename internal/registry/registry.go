package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/rpinject/internal/session"
)

// Module is the interface that all setup modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// SetupFunc prepares the session's test-output directory for one
// integration.
type SetupFunc func(ctx context.Context, sess session.Session) error

// RegisteredSetup is a named setup function.
type RegisteredSetup struct {
	Name string
	Fn   SetupFunc
}

// Registry holds the registered setups for a single application instance.
type Registry struct {
	setups []*RegisteredSetup
	byName map[string]*RegisteredSetup
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{byName: make(map[string]*RegisteredSetup)}
}

// RegisterSetup appends a setup. Registering the same name twice is a
// programmer error and panics.
func (r *Registry) RegisterSetup(name string, fn SetupFunc) {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("setup with name '%s' already registered", name))
	}
	slog.Debug("Registering setup.", "name", name)
	s := &RegisteredSetup{Name: name, Fn: fn}
	r.setups = append(r.setups, s)
	r.byName[name] = s
}

// Setups returns the registered setups in registration order.
func (r *Registry) Setups() []*RegisteredSetup {
	out := make([]*RegisteredSetup, len(r.setups))
	copy(out, r.setups)
	return out
}

// Lookup returns the setup registered under name.
func (r *Registry) Lookup(name string) (*RegisteredSetup, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns the registered setup names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.setups))
	for i, s := range r.setups {
		names[i] = s.Name
	}
	return names
}

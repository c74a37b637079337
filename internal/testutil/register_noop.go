package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/session"
)

// RecordingModule registers one no-op setup per name and records the order
// in which they ran.
type RecordingModule struct {
	Names []string

	mu    sync.Mutex
	calls []string
}

// Register implements the registry.Module interface.
func (m *RecordingModule) Register(r *registry.Registry) {
	for _, name := range m.Names {
		name := name
		r.RegisterSetup(name, func(ctx context.Context, sess session.Session) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.calls = append(m.calls, name)
			return nil
		})
	}
}

// Calls returns the names of the setups that ran, in order.
func (m *RecordingModule) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

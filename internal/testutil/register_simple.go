package testutil

import "github.com/specialistvlad/rpinject/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single setup.
type SimpleModule struct {
	Name string
	Fn   registry.SetupFunc
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" {
		r.RegisterSetup(m.Name, m.Fn)
	}
}

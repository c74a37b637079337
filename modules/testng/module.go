package testng

import (
	"context"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/session"
)

// SetupName is the name the setup is registered under.
const SetupName = "testng"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Setup is reserved for TestNG integration and currently writes nothing.
// TestNG picks the agent up from its listener on the classpath.
func (m *Module) Setup(ctx context.Context, sess session.Session) error {
	ctxlog.FromContext(ctx).Debug("TestNG setup has nothing to install.", "test_output_dir", sess.TestOutputDir())
	return nil
}

// Register registers the setup with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSetup(SetupName, m.Setup)
}

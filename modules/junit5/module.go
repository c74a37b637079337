package junit5

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/provider"
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/resources"
	"github.com/specialistvlad/rpinject/internal/session"
)

// SetupName is the name the setup is registered under.
const SetupName = "junit5"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Templates overrides the bundled templates when set.
	Templates fs.FS
}

// Setup registers the extension provider and drops the platform properties
// file into the test-output directory. Both templates are loaded before
// anything is written, so a missing template leaves the directory untouched.
func (m *Module) Setup(ctx context.Context, sess session.Session) error {
	logger := ctxlog.FromContext(ctx)

	load := resources.Load
	if m.Templates != nil {
		load = func(path string) ([]byte, error) { return resources.LoadFrom(m.Templates, path) }
	}
	extension, err := load(resources.ExtensionTemplate)
	if err != nil {
		return err
	}
	platform, err := load(resources.PlatformPropertiesTemplate)
	if err != nil {
		return err
	}

	root := sess.TestOutputDir()
	if err := provider.InstallProvider(ctx, extension, provider.ExtensionPath(root)); err != nil {
		return fmt.Errorf("install extension provider: %w", err)
	}
	written, err := provider.InstallCompanion(ctx, platform, provider.PlatformPropertiesPath(root))
	if err != nil {
		return fmt.Errorf("install platform properties: %w", err)
	}

	logger.Debug("JUnit 5 extension registered.", "test_output_dir", root, "platform_properties_written", written)
	return nil
}

// Register registers the setup with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSetup(SetupName, m.Setup)
}

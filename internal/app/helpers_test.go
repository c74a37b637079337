package app

import (
	"testing"

	"github.com/specialistvlad/rpinject/internal/localsession"
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/testutil"
)

// setupAppTest creates a new app instance with debug logging captured in a
// buffer that is dumped when the test fails.
func setupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(logBuffer, cfg, &localsession.SessionFactory{}, modules...)
	testutil.LogOnFailure(t, logBuffer)

	return testApp, logBuffer
}

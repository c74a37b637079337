package junit5

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/specialistvlad/rpinject/internal/localsession"
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	extensionRel = "out/META-INF/services/org.junit.jupiter.api.extension.Extension"
	platformRel  = "out/junit-platform.properties"
	extension    = "com.epam.reportportal.junit5.ReportPortalExtension\n"
)

func newSession(fx *testutil.Fixture) *localsession.Session {
	return localsession.New(&descriptor.Project{}, &artifact.Manifest{Self: artifact.DefaultSelf}, fx.Path("out"))
}

func TestSetup_FreshDirectory(t *testing.T) {
	// --- Arrange ---
	fx := testutil.NewFixture(t)
	m := &Module{}

	// --- Act ---
	err := m.Setup(context.Background(), newSession(fx))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, extension, fx.ReadFile(t, extensionRel))
	assert.Equal(t, "junit.jupiter.extensions.autodetection.enabled=true\n", fx.ReadFile(t, platformRel))
}

func TestSetup_Repeated(t *testing.T) {
	// --- Arrange ---
	fx := testutil.NewFixture(t)
	fx.WriteFiles(t, map[string]string{
		"out/META-INF/services/org.junit.jupiter.api.extension.Extension": "org.example.OtherExtension",
		"out/junit-platform.properties":                                   "junit.jupiter.execution.parallel.enabled=true\n",
	})
	m := &Module{}
	sess := newSession(fx)

	// --- Act ---
	require.NoError(t, m.Setup(context.Background(), sess))
	require.NoError(t, m.Setup(context.Background(), sess))

	// --- Assert ---
	assert.Equal(t, "org.example.OtherExtension\n"+extension+"\n"+extension, fx.ReadFile(t, extensionRel))
	assert.Equal(t, "junit.jupiter.execution.parallel.enabled=true\n", fx.ReadFile(t, platformRel))
}

func TestSetup_MissingTemplateWritesNothing(t *testing.T) {
	fx := testutil.NewFixture(t)
	m := &Module{Templates: fstest.MapFS{
		"services/org.junit.jupiter.api.extension.Extension": {Data: []byte(extension)},
	}}

	err := m.Setup(context.Background(), newSession(fx))

	var missing *fault.ResourceMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "junit-platform.properties", missing.Path)
	assert.False(t, fx.Exists("out"))
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	setup, ok := r.Lookup(SetupName)
	require.True(t, ok)
	assert.NotNil(t, setup.Fn)
}

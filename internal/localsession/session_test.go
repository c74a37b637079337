package localsession

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTestOutputDir(t *testing.T) {
	base := t.TempDir()
	source := filepath.Join(base, "build.hcl")
	abs := filepath.Join(t.TempDir(), "explicit")

	testCases := []struct {
		name     string
		project  descriptor.Project
		explicit string
		want     string
	}{
		{name: "explicit absolute", project: descriptor.Project{Source: source, TestOutputDirectory: "ignored"}, explicit: abs, want: abs},
		{name: "descriptor test output", project: descriptor.Project{Source: source, TestOutputDirectory: "out/tests"}, want: filepath.Join(base, "out", "tests")},
		{name: "build directory", project: descriptor.Project{Source: source, BuildDirectory: "build"}, want: filepath.Join(base, "build", "test-classes")},
		{name: "default", project: descriptor.Project{Source: source}, want: filepath.Join(base, "target", "test-classes")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveTestOutputDir(&tc.project, tc.explicit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSessionFactory_NilManifestUsesDefaults(t *testing.T) {
	project := &descriptor.Project{Source: filepath.Join(t.TempDir(), "build.hcl")}

	sess, err := (&SessionFactory{}).NewSession(context.Background(), project, nil, "")

	require.NoError(t, err)
	assert.Equal(t, artifact.DefaultSelf, sess.Self())
	assert.Empty(t, sess.PluginArtifacts())
	assert.Same(t, project, sess.Project())
}

func TestSessionFactory_RequiresProject(t *testing.T) {
	_, err := (&SessionFactory{}).NewSession(context.Background(), nil, nil, "")
	require.Error(t, err)
}

func TestDeclaredConfiguration_MergesEverySelfEntry(t *testing.T) {
	// --- Arrange ---
	self := artifact.MustParse("com.example.rp:plugin:1.0")
	project := &descriptor.Project{}

	first := project.AddPlugin(self)
	first.EnsureConfiguration().AddChild("rp.endpoint", "http://x")
	project.AddPlugin(artifact.MustParse("org.other:plugin")).EnsureConfiguration().AddChild("rp.launch", "wrong")
	project.AddPlugin(artifact.MustParse("com.example.rp:plugin:2.0"))
	third := project.AddPlugin(self)
	third.EnsureConfiguration().AddChild("rp.launch", "demo")

	sess := New(project, &artifact.Manifest{Self: self}, "/out")

	// --- Act ---
	cfg := sess.DeclaredConfiguration()

	// --- Assert ---
	want := configtree.New("configuration")
	want.AddChild("rp.endpoint", "http://x")
	want.AddChild("rp.launch", "demo")
	assert.True(t, want.Equal(cfg), cfg.String())

	cfg.AddChild("rp.extra", "x")
	assert.Equal(t, 1, first.Configuration.Len(), "the merged tree must be a copy")
}

func TestDeclaredConfiguration_NeverNil(t *testing.T) {
	sess := New(&descriptor.Project{}, &artifact.Manifest{Self: artifact.DefaultSelf}, "/out")

	cfg := sess.DeclaredConfiguration()

	require.NotNil(t, cfg)
	assert.Equal(t, 0, cfg.Len())
}

func TestEnsureComponent(t *testing.T) {
	project := &descriptor.Project{}
	sess := New(project, &artifact.Manifest{Self: artifact.DefaultSelf}, "/out")
	id := artifact.MustParse("org.apache.maven.plugins:maven-surefire-plugin")

	created := sess.EnsureComponent(id)
	again := sess.EnsureComponent(id)

	assert.Same(t, created, again)
	assert.Len(t, project.Plugins, 1)
	assert.Same(t, created, project.FindPlugin(id.Key()))
}

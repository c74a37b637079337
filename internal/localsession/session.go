// Package localsession provides a concrete implementation of the
// session.Session and session.SessionFactory interfaces backed by a
// descriptor file and a resolver manifest on the local file system.
package localsession

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/specialistvlad/rpinject/internal/session"
)

const (
	// DefaultBuildDirectory is used when the project names none.
	DefaultBuildDirectory = "target"
	// TestClassesDir is the test-output directory name under the build
	// directory.
	TestClassesDir = "test-classes"
)

// SessionFactory implements session.SessionFactory for local runs.
type SessionFactory struct{}

// NewSession resolves the test-output directory and wraps the inputs. An
// explicit testOutputDir wins over the project's test_output_directory,
// which wins over <build_directory>/test-classes. Relative paths resolve
// against the descriptor's directory. A nil manifest means nothing was
// resolved and the tool has its default identity.
func (f *SessionFactory) NewSession(
	ctx context.Context,
	project *descriptor.Project,
	manifest *artifact.Manifest,
	testOutputDir string,
) (session.Session, error) {
	logger := ctxlog.FromContext(ctx)

	if project == nil {
		return nil, fmt.Errorf("a project is required to start a session")
	}
	if manifest == nil {
		manifest = &artifact.Manifest{Self: artifact.DefaultSelf}
	}

	dir, err := ResolveTestOutputDir(project, testOutputDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Local session created.",
		"self", manifest.Self.ID(),
		"test_output_dir", dir,
		"artifacts", len(manifest.Artifacts),
	)
	return New(project, manifest, dir), nil
}

// ResolveTestOutputDir applies the test-output precedence rules and returns
// an absolute path.
func ResolveTestOutputDir(project *descriptor.Project, explicit string) (string, error) {
	dir := explicit
	switch {
	case dir != "":
	case project.TestOutputDirectory != "":
		dir = project.TestOutputDirectory
	case project.BuildDirectory != "":
		dir = filepath.Join(project.BuildDirectory, TestClassesDir)
	default:
		dir = filepath.Join(DefaultBuildDirectory, TestClassesDir)
	}
	if !filepath.IsAbs(dir) && explicit == "" {
		dir = filepath.Join(project.Dir(), dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve test output directory %s: %w", dir, err)
	}
	return abs, nil
}

// Session implements session.Session for local runs.
type Session struct {
	project       *descriptor.Project
	manifest      *artifact.Manifest
	testOutputDir string
}

// New wraps already-resolved inputs. testOutputDir is used as given.
func New(project *descriptor.Project, manifest *artifact.Manifest, testOutputDir string) *Session {
	return &Session{project: project, manifest: manifest, testOutputDir: testOutputDir}
}

func (s *Session) Project() *descriptor.Project { return s.project }

func (s *Session) Self() artifact.Identity { return s.manifest.Self }

func (s *Session) TestOutputDir() string { return s.testOutputDir }

func (s *Session) PluginArtifacts() []artifact.Ref { return s.manifest.Artifacts }

func (s *Session) PluginDependencies() []artifact.Identity { return s.manifest.Dependencies }

func (s *Session) AddDependency(id artifact.Identity) { s.project.AddDependency(id) }

// EnsureComponent returns the plugin declared under id's key, declaring it
// with id's coordinates when absent.
func (s *Session) EnsureComponent(id artifact.Identity) *descriptor.Plugin {
	if pl := s.project.FindPlugin(id.Key()); pl != nil {
		return pl
	}
	return s.project.AddPlugin(id)
}

// DeclaredConfiguration concatenates, in declaration order, the
// configuration children of every plugin entry declaring the tool. The
// returned tree is a copy.
func (s *Session) DeclaredConfiguration() *configtree.Node {
	merged := configtree.New(descriptor.ConfigurationName)
	for _, pl := range s.project.PluginsByKey(s.manifest.Self.Key()) {
		if pl.Configuration == nil {
			continue
		}
		for _, c := range pl.Configuration.Children() {
			merged.Append(c.Clone())
		}
	}
	return merged
}

// Package session defines the host context every setup step works against:
// the loaded project, the tool's own identity and resolved artifacts, and
// the test-output directory. It abstracts where that context comes from so
// steps never depend on a particular build system.
package session

import (
	"context"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
	"github.com/specialistvlad/rpinject/internal/descriptor"
)

// SessionFactory creates a Session from a loaded descriptor and resolver
// manifest. Different implementations can back the session with other
// hosts.
type SessionFactory interface {
	NewSession(
		ctx context.Context,
		project *descriptor.Project,
		manifest *artifact.Manifest,
		testOutputDir string,
	) (Session, error)
}

// Session is the host context for a single run.
type Session interface {
	// Project returns the descriptor being prepared. Mutations made through
	// the session are visible here.
	Project() *descriptor.Project
	// Self returns the tool's own identity.
	Self() artifact.Identity
	// DeclaredConfiguration merges the configuration of every plugin entry
	// declaring the tool. It is never nil.
	DeclaredConfiguration() *configtree.Node
	// TestOutputDir returns the absolute test-output root.
	TestOutputDir() string
	// PluginArtifacts returns everything the resolver resolved for the tool.
	PluginArtifacts() []artifact.Ref
	// PluginDependencies returns the dependencies declared on the tool's
	// plugin entry.
	PluginDependencies() []artifact.Identity
	// EnsureComponent returns the plugin declared under id's key, declaring
	// it when absent.
	EnsureComponent(id artifact.Identity) *descriptor.Plugin
	// AddDependency declares a project dependency.
	AddDependency(id artifact.Identity)
}

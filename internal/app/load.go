package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/specialistvlad/rpinject/internal/session"
)

// openSession loads the descriptor and the optional resolver manifest and
// hands them to the session factory.
func (a *App) openSession(ctx context.Context) (session.Session, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading descriptor...", "path", a.config.DescriptorPath)

	project, err := descriptor.Load(ctx, a.config.DescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("load descriptor: %w", err)
	}
	logger.Debug("Descriptor loaded.",
		"project", project.Identity().ID(),
		"plugins", len(project.Plugins),
		"dependencies", len(project.Dependencies),
	)

	var manifest *artifact.Manifest
	if a.config.ArtifactsPath != "" {
		manifest, err = artifact.LoadManifest(a.config.ArtifactsPath)
		if err != nil {
			return nil, fmt.Errorf("load artifacts: %w", err)
		}
		logger.Debug("Artifact manifest loaded.", "path", a.config.ArtifactsPath, "artifacts", len(manifest.Artifacts))
	} else {
		logger.Debug("No artifact manifest configured, nothing resolved.")
	}

	sess, err := a.factory.NewSession(ctx, project, manifest, a.config.TestOutputDir)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

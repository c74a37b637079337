package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/specialistvlad/rpinject/internal/inject"
	"github.com/specialistvlad/rpinject/internal/properties"
)

// Run executes the preparation sequence: merge properties, run every
// registered setup in order, inject the selected artifacts and write the
// effective descriptor. The first failure aborts the remaining steps; side
// effects of the completed ones stay.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}

	declared := properties.Declared(sess.DeclaredConfiguration())
	propsPath := properties.ResolvePath(sess.TestOutputDir(), declared, properties.DefaultRelativePath())
	merged, err := properties.Merge(ctx, propsPath, declared)
	if err != nil {
		return fmt.Errorf("merge properties: %w", err)
	}
	a.logger.Debug("Properties merged.", "path", propsPath, "declared", len(declared), "total", len(merged))

	for _, setup := range a.registry.Setups() {
		a.logger.Debug("Running setup.", "name", setup.Name)
		if err := setup.Fn(ctxlog.With(ctx, "setup", setup.Name), sess); err != nil {
			return fmt.Errorf("setup %s: %w", setup.Name, err)
		}
	}

	res, err := inject.Run(ctx, sess, a.config.Mode, inject.Options{Dedupe: a.config.Dedupe})
	if err != nil {
		return fmt.Errorf("inject artifacts: %w", err)
	}

	if a.config.OutputPath != "" {
		if err := descriptor.Save(ctx, a.config.OutputPath, sess.Project()); err != nil {
			return fmt.Errorf("write descriptor: %w", err)
		}
		a.logger.Debug("Effective descriptor written.", "path", a.config.OutputPath)
	}

	a.logger.Info("Test output prepared.",
		"test_output_dir", sess.TestOutputDir(),
		"properties", propsPath,
		"setups", len(a.registry.Setups()),
		"mode", string(a.config.Mode),
		"injected", res.Applied,
		"skipped", res.Skipped,
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

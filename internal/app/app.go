package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	factory  session.SessionFactory
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Without modules the core setups are registered.
func NewApp(outW io.Writer, cfg *Config, factory session.SessionFactory, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All setup modules registered.", "count", len(modules), "setups", reg.Names())

	if err := reg.ValidateRegistry(ctx); err != nil {
		// A broken module is a programmer error, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		factory:  factory,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

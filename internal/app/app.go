// Package app wires the resolution core together: logger, declaration
// loader, spec store, module registry, and resolver. It is the composition
// root used by the CLI and by integration tests.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/resolve"
	"github.com/vk/samcase/internal/signature"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	store    *config.SpecStore
	resolver *resolve.Resolver
}

// NewApp is the constructor for the main application. It loads all
// declarations reachable from the configured path and returns a fully
// initialized App with its own isolated logger, store, and resolver.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.SpecPath)
	if err != nil {
		// A failure to load declarations is a fatal startup error.
		panic(fmt.Errorf("failed to load declarations: %w", err))
	}
	logger.Debug("Declarations loaded and translated into unified model.")

	store := config.NewSpecStore(model)
	resolver, err := resolve.New(store, signature.NewManifestRegistry(store))
	if err != nil {
		panic(fmt.Errorf("failed to initialize resolver: %w", err))
	}
	logger.Debug("Spec store and resolver initialized.",
		"configs", len(store.ConfigNames()))

	return &App{
		outW:     outW,
		logger:   logger,
		store:    store,
		resolver: resolver,
	}
}

// Store returns the application's spec store. This is primarily for testing.
func (a *App) Store() *config.SpecStore {
	return a.store
}

// Resolver returns the application's resolver. This is primarily for testing.
func (a *App) Resolver() *resolve.Resolver {
	return a.resolver
}

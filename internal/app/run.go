package app

import (
	"context"
	"fmt"

	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/resolve"
)

// Run resolves the requested configurations and writes each diagnostic
// dump to the application's output writer. With no named case, every
// declared configuration is resolved in name order. The first resolution
// failure aborts the run.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	names := a.store.ConfigNames()
	if appConfig.Case != "" {
		names = []string{appConfig.Case}
	}
	if len(names) == 0 {
		a.logger.Warn("No configurations found, nothing to resolve.")
		return nil
	}

	for _, name := range names {
		rc, err := a.resolver.Resolve(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve configuration %q: %w", name, err)
		}
		fmt.Fprint(a.outW, resolve.Format(rc))
	}

	a.logger.Debug("App.Run method finished.", "resolved", len(names))
	return nil
}

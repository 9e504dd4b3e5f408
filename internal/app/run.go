package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/setup"
)

// Run performs setup once. With the health check enabled it then keeps
// serving until ctx is cancelled; otherwise it returns as soon as setup
// completes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx, a.config.HealthcheckPort); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	a.logger.Info("Starting setup.", "features", len(a.installers))
	if err := setup.New().AddFrom(installer(a.installers)).Setup(ctx, a.session); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	a.ready.Store(true)
	a.logger.Info("Setup complete!")

	if a.httpServer != nil {
		a.logger.Info("Serving health check until interrupted.")
		<-ctx.Done()
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

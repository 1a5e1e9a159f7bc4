package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"poolside/internal/pkg/config"
	"poolside/internal/usecase/commands"

	"go.uber.org/fx"
)

// SweeperModule runs the periodic background pass: refuse overdue payment
// windows, then re-derive availability for pools the sweep released. The same
// sweep also runs inline before owner reads, so the interval only bounds how
// stale the flag can get without traffic.
var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

func StartSweeper(
	lc fx.Lifecycle,
	cfg config.Config,
	sweeper *commands.PaymentSweeper,
	reconciler *commands.AvailabilityReconciler,
) {
	ticker := time.NewTicker(cfg.Sweep.Interval)
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				for {
					select {
					case <-ticker.C:
						runSweep(sweeper, reconciler)
					case <-done:
						return
					}
				}
			}()
			slog.Info("payment sweeper started", "interval", cfg.Sweep.Interval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}

func runSweep(sweeper *commands.PaymentSweeper, reconciler *commands.AvailabilityReconciler) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := sweeper.SweepExpiredPayments(ctx); err != nil {
		slog.Error("scheduled sweep failed", "error", err.Error())
	}
	if err := reconciler.ReconcileAll(ctx); err != nil {
		slog.Error("scheduled reconcile failed", "error", err.Error())
	}
}

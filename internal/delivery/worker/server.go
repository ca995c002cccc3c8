// Package worker hosts the background retention sweeper delivery.
package worker

import (
	"context"
	"log/slog"
	"time"

	"mall/config"
	"mall/internal/delivery"
	"mall/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Hour

// ServerParams holds dependencies for the sweeper delivery
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// sweeper periodically purges retention-expired notification rows. It runs as
// a second delivery alongside the HTTP server and shares its lifecycle.
type sweeper struct {
	cfg            *config.Config
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase

	interval time.Duration
	stopped  chan struct{}
}

// NewSweeper creates the retention sweeper delivery.
func NewSweeper(params ServerParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Cfg.Notification != nil && params.Cfg.Notification.SweepInterval > 0 {
		interval = params.Cfg.Notification.SweepInterval
	}

	srv := &sweeper{
		cfg:            params.Cfg,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		interval:       interval,
		stopped:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the sweep loop until the delivery is stopped.
func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting notification retention sweeper",
		slog.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopped:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one purge pass. Failures are logged and the loop continues; a
// missed pass only delays cleanup until the next tick.
func (s *sweeper) sweep(ctx context.Context) {
	purged, err := s.notificationUC.PurgeExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Notification retention sweep failed",
			slog.String("error", err.Error()),
		)

		return
	}

	if purged > 0 {
		s.logger.Info("Notification retention sweep completed",
			slog.Int64("purged", purged),
		)
	}
}

func (s *sweeper) stop(_ context.Context) error {
	s.logger.Info("Shutting down notification retention sweeper")
	close(s.stopped)

	return nil
}

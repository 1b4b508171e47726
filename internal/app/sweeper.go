package app

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const defaultSweepInterval = 30 * time.Second

// runHoldSweeper expires holds and advances time-driven session states until
// ctx is cancelled.
func (app *Application) runHoldSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.logger.Info("hold sweeper started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("hold sweeper stopped")
			return
		case <-ticker.C:
			released, err := app.sweepHolds(ctx)
			if err != nil {
				app.logger.Error("hold sweep failed", "error", err)
				continue
			}

			if released > 0 {
				app.logger.Info("expired holds released", "count", released)
			}
		}
	}
}

// sweepHolds visits every session that is not finished or cancelled and
// returns the number of holds it released. A session that is locked by a
// request is skipped until the next sweep.
func (app *Application) sweepHolds(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer(serviceName).Start(ctx, "sweepHolds")
	defer span.End()

	ids, err := app.sessionRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, err
	}

	total := 0

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		released, err := app.sweepSession(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrLocked) || errors.Is(err, domain.ErrEditConflict) {
				app.logger.Debug("session busy, skipped by sweep", "session_id", id)
				continue
			}

			app.logger.Error("failed to sweep session", "session_id", id, "error", err)
			continue
		}

		total += released
	}

	span.SetAttributes(
		attribute.Int("sessions", len(ids)),
		attribute.Int("released_holds", total),
	)

	return total, nil
}

// sweepSession releases expired holds of one session and applies the
// time-driven status changes. The session is only saved when something changed.
func (app *Application) sweepSession(ctx context.Context, sessionID int) (int, error) {
	unlock, err := app.locker.Lock(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	session, err := app.sessionRepo.GetById(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	now := app.now()

	released := session.ExpireAllHolds(now)
	advanced := session.Advance(now)

	if released == 0 && !advanced {
		return 0, nil
	}

	err = app.sessionRepo.Save(ctx, session)
	if err != nil {
		return 0, err
	}

	if released > 0 {
		app.metrics.holdsExpired.Add(ctx, int64(released))
	}

	if advanced {
		app.logger.Info("session status advanced", "session_id", sessionID, "status", session.Status)
	}

	return released, nil
}

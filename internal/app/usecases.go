package app

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
)

// withSession loads the session under its lock, brings it up to date with
// now, applies fn and saves the result. Nothing is saved when fn fails.
func (app *Application) withSession(
	ctx context.Context,
	sessionID int,
	fn func(session *domain.Session, now time.Time) error) (*domain.Session, error) {

	unlock, err := app.locker.Lock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := app.sessionRepo.GetById(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := app.now()

	session.ExpireAllHolds(now)
	session.Advance(now)

	err = fn(session, now)
	if err != nil {
		return nil, err
	}

	err = app.sessionRepo.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// withRoom runs fn while no other booking of the room can be stored.
func (app *Application) withRoom(ctx context.Context, roomID int, fn func() error) error {
	unlock, err := app.roomLocker.Lock(ctx, roomID)
	if err != nil {
		return err
	}
	defer unlock()

	return fn()
}

// ensureRoomFree fails with domain.ErrRoomConflict when another screening or
// event reservation overlaps the window.
func (app *Application) ensureRoomFree(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID, excludeReservationID *int) error {

	conflict, err := app.conflicts.HasConflict(ctx, roomID, start, end, excludeSessionID, excludeReservationID)
	if err != nil {
		return err
	}

	if conflict {
		return domain.ErrRoomConflict
	}

	return nil
}

// priceFor quotes a ticket of the session for the customer using the rules in
// force at the purchase moment.
func (app *Application) priceFor(
	ctx context.Context,
	customer *domain.Customer,
	session *domain.Session,
	purchaseMoment time.Time) (domain.PricingResult, error) {

	rules, err := app.promotionRepo.ListInForce(ctx, purchaseMoment)
	if err != nil {
		return domain.PricingResult{}, err
	}

	return app.pricing.PriceFor(customer, session, rules, purchaseMoment)
}

// publish sends an event after the state change it describes was stored. A
// failure is logged and does not undo the change.
func (app *Application) publish(ctx context.Context, event domain.Event) {
	err := app.publisher.Publish(ctx, event)
	if err != nil {
		app.logger.ErrorContext(ctx, "failed to publish event", "routing_key", event.RoutingKey(), "error", err)
	}
}

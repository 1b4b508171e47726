package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// readSeatRequest checks the session id and normalises the seat label of a
// seat route.
func (app *Application) readSeatRequest(sessionID int, seatLabel string) (string, error) {
	if sessionID < 1 {
		return "", fmt.Errorf("session ID must be greater than zero")
	}

	return app.readSeatLabel(seatLabel)
}

// readCustomer decodes and validates a customer request and loads the customer.
// It writes the error response itself and reports false on failure.
func (app *Application) readCustomer(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	var input api.CustomerRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	customer, err := app.customerRepo.GetById(r.Context(), input.CustomerId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return nil, false
	}

	return customer, true
}

func (app *Application) HoldSeat(w http.ResponseWriter, r *http.Request, sessionID int, seatLabel string) {
	logger := app.contextGetLogger(r)

	label, err := app.readSeatRequest(sessionID, seatLabel)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	customer, ok := app.readCustomer(w, r)
	if !ok {
		return
	}

	session, err := app.withSession(r.Context(), sessionID, func(session *domain.Session, now time.Time) error {
		return session.HoldSeat(label, customer.ID, app.config.Sessions.HoldMinutes, now)
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	seat, _ := session.Seat(label)
	expiresAt, _ := seat.HoldExpiresAt()

	logger.Info("seat held", "session_id", sessionID, "seat", label, "customer_id", customer.ID, "expires_at", expiresAt)

	resp := api.HoldSeatResponse{
		SessionId:     session.ID,
		Seat:          toApiSeat(seat),
		HoldExpiresAt: expiresAt.UTC(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) QuotePrice(w http.ResponseWriter, r *http.Request, sessionID int) {
	if sessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("session ID must be greater than zero"))
		return
	}

	customer, ok := app.readCustomer(w, r)
	if !ok {
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), sessionID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	price, err := app.priceFor(r.Context(), customer, session, app.now())
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPrice(price), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ConfirmSeat prices the ticket and then makes the seat final. Confirming a
// seat that is already occupied succeeds without a new event.
func (app *Application) ConfirmSeat(w http.ResponseWriter, r *http.Request, sessionID int, seatLabel string) {
	logger := app.contextGetLogger(r)

	label, err := app.readSeatRequest(sessionID, seatLabel)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	customer, ok := app.readCustomer(w, r)
	if !ok {
		return
	}

	var (
		price       domain.PricingResult
		changed     bool
		confirmedAt time.Time
	)

	session, err := app.withSession(r.Context(), sessionID, func(session *domain.Session, now time.Time) error {
		var err error

		price, err = app.priceFor(r.Context(), customer, session, now)
		if err != nil {
			return err
		}

		changed, err = session.ConfirmSeat(label, customer.ID, now)
		confirmedAt = now

		return err
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	if changed {
		logger.Info("seat confirmed", "session_id", sessionID, "seat", label, "customer_id", customer.ID, "amount", price.FinalPrice)

		app.metrics.seatsConfirmed.Add(r.Context(), 1,
			otelmetric.WithAttributes(attribute.Bool("statutory", price.Statutory)))

		app.publish(r.Context(), domain.SeatConfirmedEvent{
			SessionID:   sessionID,
			SeatLabel:   label,
			CustomerID:  customer.ID,
			Amount:      price.FinalPrice,
			Discount:    price.Discount,
			RuleID:      price.RuleID,
			Statutory:   price.Statutory,
			ConfirmedAt: confirmedAt,
		})
	} else {
		logger.Info("seat already occupied, confirmation ignored", "session_id", sessionID, "seat", label)
	}

	seat, _ := session.Seat(label)

	resp := api.ConfirmSeatResponse{
		SessionId:     session.ID,
		SessionStatus: string(session.Status),
		Seat:          toApiSeat(seat),
		Price:         toApiPrice(price),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReleaseSeat(w http.ResponseWriter, r *http.Request, sessionID int, seatLabel string) {
	app.changeSeat(w, r, sessionID, seatLabel, "seat released", (*domain.Session).ReleaseSeat)
}

func (app *Application) BlockSeat(w http.ResponseWriter, r *http.Request, sessionID int, seatLabel string) {
	app.changeSeat(w, r, sessionID, seatLabel, "seat blocked", (*domain.Session).BlockSeat)
}

func (app *Application) UnblockSeat(w http.ResponseWriter, r *http.Request, sessionID int, seatLabel string) {
	app.changeSeat(w, r, sessionID, seatLabel, "seat unblocked", (*domain.Session).UnblockSeat)
}

func (app *Application) changeSeat(
	w http.ResponseWriter,
	r *http.Request,
	sessionID int,
	seatLabel string,
	logMsg string,
	change func(session *domain.Session, label string) error) {

	logger := app.contextGetLogger(r)

	label, err := app.readSeatRequest(sessionID, seatLabel)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.withSession(r.Context(), sessionID, func(session *domain.Session, _ time.Time) error {
		return change(session, label)
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info(logMsg, "session_id", sessionID, "seat", label, "session_status", session.Status)

	seat, _ := session.Seat(label)

	resp := api.SeatResponse{
		SessionId:     session.ID,
		SessionStatus: string(session.Status),
		Seat:          toApiSeat(seat),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

func (app *Application) CreateEventReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateEventReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var reservation *domain.EventReservation

	err = app.withRoom(r.Context(), input.RoomId, func() error {
		room, err := app.roomRepo.GetById(r.Context(), input.RoomId)
		if err != nil {
			return err
		}

		customer, err := app.customerRepo.GetById(r.Context(), input.CustomerId)
		if err != nil {
			return err
		}

		reservation, err = domain.NewEventReservation(room, customer.ID, input.Title, input.StartTime, input.EndTime)
		if err != nil {
			return err
		}

		err = app.ensureRoomFree(r.Context(), room.ID, reservation.StartTime, reservation.EndTime, nil, nil)
		if err != nil {
			return err
		}

		return app.eventReservationRepo.Create(r.Context(), reservation)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoomConflict) {
			logger.Warn("event reservation rejected: room is booked", "room_id", input.RoomId, "start_time", input.StartTime)
		}
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("event reservation created", "reservation_id", reservation.ID, "room_id", reservation.RoomID)

	err = app.writeJSON(w, http.StatusCreated, toApiEventReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetEventReservation(w http.ResponseWriter, r *http.Request, reservationID int) {
	if reservationID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("reservation ID must be greater than zero"))
		return
	}

	reservation, err := app.eventReservationRepo.GetById(r.Context(), reservationID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiEventReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelEventReservation(w http.ResponseWriter, r *http.Request, reservationID int) {
	logger := app.contextGetLogger(r)

	if reservationID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("reservation ID must be greater than zero"))
		return
	}

	reservation, err := app.eventReservationRepo.GetById(r.Context(), reservationID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = reservation.Cancel()
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.eventReservationRepo.UpdateStatus(r.Context(), reservation.ID, reservation.Status)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("event reservation cancelled", "reservation_id", reservation.ID)

	err = app.writeJSON(w, http.StatusOK, toApiEventReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

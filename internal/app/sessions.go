package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	DefaultSort     = "start_time"
)

func (app *Application) ScheduleSession(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateSessionRequest

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

	var session *domain.Session

	err = app.withRoom(r.Context(), input.RoomId, func() error {
		movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
		if err != nil {
			return err
		}

		room, err := app.roomRepo.GetById(r.Context(), input.RoomId)
		if err != nil {
			return err
		}

		if !movie.InExhibition(input.StartTime) {
			return fmt.Errorf("%w: movie %d is not in exhibition on %s",
				domain.ErrInvalidInput, movie.ID, input.StartTime.Format(time.DateOnly))
		}

		session, err = domain.NewSession(movie, room, input.StartTime, input.BasePrice)
		if err != nil {
			return err
		}

		err = app.ensureRoomFree(r.Context(), room.ID, session.StartTime, session.EndTime, nil, nil)
		if err != nil {
			return err
		}

		if input.OpenSales {
			err = session.OpenForSale()
			if err != nil {
				return err
			}
		}

		return app.sessionRepo.Create(r.Context(), session)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoomConflict) {
			logger.Warn("session scheduling rejected: room is booked", "room_id", input.RoomId, "start_time", input.StartTime)
		}
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("session scheduled", "session_id", session.ID, "room_id", session.RoomID, "seats", len(session.Seats()))

	err = app.writeJSON(w, http.StatusCreated, toApiSession(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSession(w http.ResponseWriter, r *http.Request, sessionID int) {
	logger := app.contextGetLogger(r)

	if sessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("session ID must be greater than zero"))
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), sessionID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	now := app.now()

	released := session.ExpireAllHolds(now)
	advanced := session.Advance(now)

	if released > 0 || advanced {
		// The map is answered from memory; storing the change needs the lock.
		_, err := app.sweepSession(r.Context(), sessionID)
		if err != nil {
			logger.Warn("could not store expired holds on read", "session_id", sessionID, "error", err)
		}
	}

	err = app.writeJSON(w, http.StatusOK, toApiSession(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListSessions(w http.ResponseWriter, r *http.Request, params api.ListSessionsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	sessions, metadata, err := app.sessionRepo.List(r.Context(), toSessionFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SessionListResponse{
		Sessions: toApiSessionSummaries(sessions),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSessionFilters(params api.ListSessionsParams) domain.SessionFilters {
	filters := domain.SessionFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     DefaultSort,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.MovieId != nil {
		filters.MovieID = *params.MovieId
	}
	if params.RoomId != nil {
		filters.RoomID = *params.RoomId
	}
	if params.Status != nil {
		filters.Status = domain.SessionStatus(*params.Status)
	}
	if params.From != nil {
		filters.From = *params.From
	}
	if params.To != nil {
		filters.To = *params.To
	}

	return filters
}

func (app *Application) OpenSession(w http.ResponseWriter, r *http.Request, sessionID int) {
	if sessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("session ID must be greater than zero"))
		return
	}

	session, err := app.withSession(r.Context(), sessionID, func(session *domain.Session, _ time.Time) error {
		return session.OpenForSale()
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSession(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelSession(w http.ResponseWriter, r *http.Request, sessionID int) {
	logger := app.contextGetLogger(r)

	if sessionID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("session ID must be greater than zero"))
		return
	}

	var (
		occupied    []string
		cancelledAt time.Time
	)

	session, err := app.withSession(r.Context(), sessionID, func(session *domain.Session, now time.Time) error {
		var err error
		occupied, err = session.Cancel()
		cancelledAt = now
		return err
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("session cancelled", "session_id", sessionID, "tickets_to_compensate", len(occupied))

	app.publish(r.Context(), domain.SessionCancelledEvent{
		SessionID:     session.ID,
		RoomID:        session.RoomID,
		StartTime:     session.StartTime,
		OccupiedSeats: occupied,
		CancelledAt:   cancelledAt,
	})

	resp := api.CancelSessionResponse{
		Session:       toApiSession(session),
		OccupiedSeats: occupied,
	}

	if resp.OccupiedSeats == nil {
		resp.OccupiedSeats = []string{}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

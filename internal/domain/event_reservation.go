package domain

import (
	"context"
	"strings"
	"time"
)

type EventReservationStatus string

const (
	EventReservationConfirmed EventReservationStatus = "confirmed"
	EventReservationCancelled EventReservationStatus = "cancelled"
)

// EventReservation books a whole room for a private event.
type EventReservation struct {
	ID         int
	RoomID     int
	CustomerID int
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	Status     EventReservationStatus
	CreatedAt  time.Time
}

func NewEventReservation(room *Room, customerID int, title string, start, end time.Time) (*EventReservation, error) {
	if room == nil {
		return nil, invalidInput("room is required")
	}

	if customerID <= 0 {
		return nil, invalidInput("customer id must be positive")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalidInput("event title is required")
	}

	if !end.After(start) {
		return nil, invalidInput("end must be after start")
	}

	if !room.EventAvailable {
		return nil, stateConflict("room %d is not available for events", room.ID)
	}

	return &EventReservation{
		RoomID:     room.ID,
		CustomerID: customerID,
		Title:      title,
		StartTime:  start,
		EndTime:    end,
		Status:     EventReservationConfirmed,
	}, nil
}

func (r *EventReservation) Cancel() error {
	if r.Status == EventReservationCancelled {
		return stateConflict("event reservation %d is already cancelled", r.ID)
	}

	r.Status = EventReservationCancelled

	return nil
}

type EventReservationRepository interface {
	EventReservationFinder
	Create(ctx context.Context, reservation *EventReservation) error
	GetById(ctx context.Context, id int) (*EventReservation, error)
	UpdateStatus(ctx context.Context, id int, status EventReservationStatus) error
}

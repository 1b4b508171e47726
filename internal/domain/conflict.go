package domain

import (
	"context"
	"time"
)

// Screening is a session occupying a room, as seen by the conflict checker.
type Screening struct {
	SessionID       int
	RoomID          int
	StartTime       time.Time
	DurationMinutes int
}

func (s Screening) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

type ScreeningFinder interface {
	ListScreeningsConflicting(ctx context.Context, roomID int, start, end time.Time, excludeSessionID *int) ([]Screening, error)
}

type EventReservationFinder interface {
	ListEventReservationsConflicting(ctx context.Context, roomID int, start, end time.Time, excludeReservationID *int) ([]EventReservation, error)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Conflicts lists the bookings that overlap a proposed window.
type Conflicts struct {
	Screenings        []Screening
	EventReservations []EventReservation
}

func (c Conflicts) Any() bool {
	return len(c.Screenings) > 0 || len(c.EventReservations) > 0
}

// RoomConflictChecker decides whether a room is free for a time window. It is
// shared by screenings and event reservations so the two kinds of bookings can
// never double-book a room.
type RoomConflictChecker struct {
	screenings ScreeningFinder
	events     EventReservationFinder
}

func NewRoomConflictChecker(screenings ScreeningFinder, events EventReservationFinder) *RoomConflictChecker {
	return &RoomConflictChecker{
		screenings: screenings,
		events:     events,
	}
}

func (c *RoomConflictChecker) HasConflict(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID, excludeReservationID *int) (bool, error) {

	conflicts, err := c.find(ctx, roomID, start, end, excludeSessionID, excludeReservationID, true)
	if err != nil {
		return false, err
	}

	return conflicts.Any(), nil
}

// FindConflicts returns every booking overlapping the window.
func (c *RoomConflictChecker) FindConflicts(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID, excludeReservationID *int) (Conflicts, error) {

	return c.find(ctx, roomID, start, end, excludeSessionID, excludeReservationID, false)
}

func (c *RoomConflictChecker) find(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID, excludeReservationID *int,
	firstOnly bool) (Conflicts, error) {

	var conflicts Conflicts

	if roomID <= 0 {
		return conflicts, invalidInput("room id must be positive")
	}

	if !end.After(start) {
		return conflicts, invalidInput("end must be after start")
	}

	screenings, err := c.screenings.ListScreeningsConflicting(ctx, roomID, start, end, excludeSessionID)
	if err != nil {
		return conflicts, err
	}

	for _, s := range screenings {
		if excludeSessionID != nil && s.SessionID == *excludeSessionID {
			continue
		}

		if Overlaps(s.StartTime, s.EndTime(), start, end) {
			conflicts.Screenings = append(conflicts.Screenings, s)
			if firstOnly {
				return conflicts, nil
			}
		}
	}

	reservations, err := c.events.ListEventReservationsConflicting(ctx, roomID, start, end, excludeReservationID)
	if err != nil {
		return conflicts, err
	}

	for _, r := range reservations {
		if excludeReservationID != nil && r.ID == *excludeReservationID {
			continue
		}

		if Overlaps(r.StartTime, r.EndTime, start, end) {
			conflicts.EventReservations = append(conflicts.EventReservations, r)
			if firstOnly {
				return conflicts, nil
			}
		}
	}

	return conflicts, nil
}

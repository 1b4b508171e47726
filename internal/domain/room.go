package domain

import (
	"context"
	"strconv"
)

// Room is a screening room. SeatClasses overrides the class of individual
// seats by label; seats not listed are standard.
type Room struct {
	ID             int
	Name           string
	Capacity       int
	SeatsPerRow    int
	SeatClasses    map[string]SeatClass
	EventAvailable bool
}

type SeatSpec struct {
	Label string
	Class SeatClass
}

// SeatLayout lists the room's seats row by row: A1, A2, ..., B1, ...
func (r *Room) SeatLayout() ([]SeatSpec, error) {
	if r.Capacity <= 0 {
		return nil, invalidInput("room %d has no capacity", r.ID)
	}

	perRow := r.SeatsPerRow
	if perRow <= 0 {
		perRow = r.Capacity
	}

	layout := make([]SeatSpec, r.Capacity)

	for i := range layout {
		label := rowLabel(i/perRow) + strconv.Itoa(i%perRow+1)

		class := SeatClassStandard
		if c, ok := r.SeatClasses[label]; ok {
			if !c.IsValid() {
				return nil, invalidInput("room %d: unknown seat class %q for %s", r.ID, c, label)
			}
			class = c
		}

		layout[i] = SeatSpec{Label: label, Class: class}
	}

	return layout, nil
}

// rowLabel maps 0 -> A, 25 -> Z, 26 -> AA.
func rowLabel(row int) string {
	label := ""
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		label = string(rune('A'+(n-1)%26)) + label
	}
	return label
}

type RoomRepository interface {
	GetById(ctx context.Context, id int) (*Room, error)
}

// RoomLocker serializes bookings of a room so a conflict check and the insert
// that follows it cannot interleave with another booking.
type RoomLocker interface {
	Lock(ctx context.Context, roomID int) (unlock func(), err error)
}

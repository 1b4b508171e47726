package domain

import "time"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatHeld      SeatStatus = "held"
	SeatOccupied  SeatStatus = "occupied"
	SeatBlocked   SeatStatus = "blocked"
)

func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatAvailable, SeatHeld, SeatOccupied, SeatBlocked:
		return true
	}
	return false
}

type SeatClass string

const (
	SeatClassStandard   SeatClass = "standard"
	SeatClassVIP        SeatClass = "vip"
	SeatClassAccessible SeatClass = "accessible"
)

func (c SeatClass) IsValid() bool {
	switch c {
	case SeatClassStandard, SeatClassVIP, SeatClassAccessible:
		return true
	}
	return false
}

// Seat is a single bookable position of a session. Seats have no reference to
// the session that owns them; the session addresses them by label.
//
// The holder and the hold expiry are set if and only if the status is
// SeatHeld.
type Seat struct {
	ID    int
	Label string
	Class SeatClass

	status        SeatStatus
	holderID      int
	holdExpiresAt time.Time
}

func newSeat(label string, class SeatClass) Seat {
	return Seat{
		Label:  label,
		Class:  class,
		status: SeatAvailable,
	}
}

// RestoreSeat rebuilds a persisted seat. It rejects combinations that break the
// hold invariant.
func RestoreSeat(
	id int,
	label string,
	class SeatClass,
	status SeatStatus,
	holderID *int,
	holdExpiresAt *time.Time) (Seat, error) {

	if label == "" {
		return Seat{}, invalidInput("seat label is required")
	}

	if !class.IsValid() {
		return Seat{}, invalidInput("unknown seat class %q", class)
	}

	if !status.IsValid() {
		return Seat{}, invalidInput("unknown seat status %q", status)
	}

	held := status == SeatHeld
	if held != (holderID != nil) || held != (holdExpiresAt != nil) {
		return Seat{}, invalidInput("seat %s: holder and expiry must be set only while held", label)
	}

	seat := Seat{ID: id, Label: label, Class: class, status: status}
	if held {
		if *holderID <= 0 {
			return Seat{}, invalidInput("seat %s: holder id must be positive", label)
		}

		seat.holderID = *holderID
		seat.holdExpiresAt = *holdExpiresAt
	}

	return seat, nil
}

func (s *Seat) Status() SeatStatus {
	return s.status
}

// Holder returns the customer currently holding the seat.
func (s *Seat) Holder() (int, bool) {
	if s.status != SeatHeld {
		return 0, false
	}
	return s.holderID, true
}

func (s *Seat) HoldExpiresAt() (time.Time, bool) {
	if s.status != SeatHeld {
		return time.Time{}, false
	}
	return s.holdExpiresAt, true
}

func (s *Seat) holdExpired(now time.Time) bool {
	return s.status == SeatHeld && s.holdExpiresAt.Before(now)
}

// HoldTemporarily claims the seat for customerID until now+holdMinutes. An
// expired hold is reclaimed.
func (s *Seat) HoldTemporarily(customerID, holdMinutes int, now time.Time) error {
	if customerID <= 0 {
		return invalidInput("customer id must be positive")
	}

	if holdMinutes <= 0 {
		return invalidInput("hold minutes must be positive")
	}

	if s.status != SeatAvailable && !s.holdExpired(now) {
		return stateConflict("seat %s is %s", s.Label, s.status)
	}

	s.status = SeatHeld
	s.holderID = customerID
	s.holdExpiresAt = now.Add(time.Duration(holdMinutes) * time.Minute)

	return nil
}

// ConfirmOccupancy makes the seat final. It reports false when the seat was
// already occupied.
func (s *Seat) ConfirmOccupancy() (bool, error) {
	switch s.status {
	case SeatOccupied:
		return false, nil
	case SeatBlocked:
		return false, stateConflict("seat %s is blocked", s.Label)
	}

	s.status = SeatOccupied
	s.clearHold()

	return true, nil
}

func (s *Seat) Release() error {
	switch s.status {
	case SeatAvailable:
		return nil
	case SeatBlocked:
		return stateConflict("seat %s is blocked", s.Label)
	}

	s.status = SeatAvailable
	s.clearHold()

	return nil
}

// ReleaseIfHoldExpired frees the seat when its hold expired strictly before now.
func (s *Seat) ReleaseIfHoldExpired(now time.Time) bool {
	if !s.holdExpired(now) {
		return false
	}

	s.status = SeatAvailable
	s.clearHold()

	return true
}

func (s *Seat) AdministrativelyBlock() error {
	switch s.status {
	case SeatBlocked:
		return nil
	case SeatOccupied:
		return stateConflict("seat %s is already sold", s.Label)
	}

	s.status = SeatBlocked
	s.clearHold()

	return nil
}

func (s *Seat) AdministrativelyUnblock() error {
	if s.status != SeatBlocked {
		return stateConflict("seat %s is not blocked", s.Label)
	}

	s.status = SeatAvailable
	s.clearHold()

	return nil
}

// forceRelease frees held and occupied seats. Blocked seats stay blocked.
func (s *Seat) forceRelease() bool {
	if s.status != SeatHeld && s.status != SeatOccupied {
		return false
	}

	s.status = SeatAvailable
	s.clearHold()

	return true
}

func (s *Seat) clearHold() {
	s.holderID = 0
	s.holdExpiresAt = time.Time{}
}

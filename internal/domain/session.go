package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SessionStatus string

const (
	SessionScheduled   SessionStatus = "scheduled"
	SessionOpenForSale SessionStatus = "open_for_sale"
	SessionSoldOut     SessionStatus = "sold_out"
	SessionInProgress  SessionStatus = "in_progress"
	SessionFinished    SessionStatus = "finished"
	SessionCancelled   SessionStatus = "cancelled"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionScheduled, SessionOpenForSale, SessionSoldOut, SessionInProgress, SessionFinished, SessionCancelled:
		return true
	}
	return false
}

func (s SessionStatus) IsTerminal() bool {
	return s == SessionFinished || s == SessionCancelled
}

// Session is a scheduled screening and the aggregate root over its seats. The
// number of seats is fixed once the session is created; only their states
// change.
type Session struct {
	ID        int
	MovieID   int
	RoomID    int
	StartTime time.Time
	EndTime   time.Time
	BasePrice decimal.Decimal
	Status    SessionStatus
	Version   int

	seats []Seat
	index map[string]int
}

// NewSession creates a scheduled session and generates one seat per position of
// the room's layout.
func NewSession(movie *Movie, room *Room, start time.Time, basePrice decimal.Decimal) (*Session, error) {
	if movie == nil {
		return nil, invalidInput("movie is required")
	}

	if movie.DurationMinutes <= 0 {
		return nil, invalidInput("movie %d has no duration", movie.ID)
	}

	if start.IsZero() {
		return nil, invalidInput("start time is required")
	}

	if basePrice.IsNegative() {
		return nil, invalidInput("base price must not be negative")
	}

	s := &Session{
		MovieID:   movie.ID,
		StartTime: start,
		EndTime:   start.Add(movie.Duration()),
		BasePrice: basePrice,
		Status:    SessionScheduled,
	}

	if room != nil {
		s.RoomID = room.ID
	}

	err := s.generateSeats(room)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) generateSeats(room *Room) error {
	if room == nil {
		return invalidInput("room is required to generate seats")
	}

	if len(s.seats) > 0 {
		return stateConflict("session seats are already generated")
	}

	layout, err := room.SeatLayout()
	if err != nil {
		return err
	}

	seats := make([]Seat, len(layout))
	for i, spec := range layout {
		seats[i] = newSeat(spec.Label, spec.Class)
	}

	return s.setSeats(seats)
}

// LoadSeats attaches persisted seats to a session read from storage.
func (s *Session) LoadSeats(seats []Seat) error {
	if len(s.seats) > 0 {
		return stateConflict("session %d already has seats", s.ID)
	}

	return s.setSeats(seats)
}

func (s *Session) setSeats(seats []Seat) error {
	index := make(map[string]int, len(seats))

	for i, seat := range seats {
		if _, ok := index[seat.Label]; ok {
			return invalidInput("duplicate seat label %s", seat.Label)
		}
		index[seat.Label] = i
	}

	s.seats = seats
	s.index = index

	return nil
}

// Seats returns a copy of the session's seats in layout order.
func (s *Session) Seats() []Seat {
	seats := make([]Seat, len(s.seats))
	copy(seats, s.seats)
	return seats
}

func (s *Session) Seat(label string) (Seat, bool) {
	i, ok := s.index[label]
	if !ok {
		return Seat{}, false
	}
	return s.seats[i], true
}

func (s *Session) seat(label string) (*Seat, error) {
	i, ok := s.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: seat %s in session %d", ErrRecordNotFound, label, s.ID)
	}
	return &s.seats[i], nil
}

// AcceptsNewSalesOrHolds reports whether seats may still be held or sold.
func (s *Session) AcceptsNewSalesOrHolds(now time.Time) bool {
	switch s.Status {
	case SessionSoldOut, SessionCancelled, SessionInProgress, SessionFinished:
		return false
	}
	return now.Before(s.StartTime)
}

func (s *Session) OpenForSale() error {
	switch s.Status {
	case SessionOpenForSale:
		return nil
	case SessionScheduled:
		s.Status = SessionOpenForSale
		return nil
	}
	return stateConflict("session %d is %s", s.ID, s.Status)
}

// HoldSeat places a temporary hold. A hold alone never makes the session sold
// out.
func (s *Session) HoldSeat(label string, customerID, holdMinutes int, now time.Time) error {
	seat, err := s.seat(label)
	if err != nil {
		return err
	}

	if !s.AcceptsNewSalesOrHolds(now) {
		return stateConflict("session %d does not accept holds (%s)", s.ID, s.Status)
	}

	return seat.HoldTemporarily(customerID, holdMinutes, now)
}

// ConfirmSeat makes the seat final for customerID. A live hold by another
// customer is a conflict; an expired one is not. It reports false when the
// seat was already occupied.
func (s *Session) ConfirmSeat(label string, customerID int, now time.Time) (bool, error) {
	if customerID <= 0 {
		return false, invalidInput("customer id must be positive")
	}

	seat, err := s.seat(label)
	if err != nil {
		return false, err
	}

	if s.Status.IsTerminal() {
		return false, stateConflict("session %d is %s", s.ID, s.Status)
	}

	if holder, ok := seat.Holder(); ok && holder != customerID && !seat.holdExpired(now) {
		return false, stateConflict("seat %s is held by another customer", label)
	}

	changed, err := seat.ConfirmOccupancy()
	if err != nil {
		return false, err
	}

	s.recomputeOccupancyStatus()

	return changed, nil
}

func (s *Session) ReleaseSeat(label string) error {
	seat, err := s.seat(label)
	if err != nil {
		return err
	}

	if s.Status.IsTerminal() {
		return stateConflict("session %d is %s", s.ID, s.Status)
	}

	err = seat.Release()
	if err != nil {
		return err
	}

	if s.Status == SessionSoldOut {
		s.recomputeOccupancyStatus()
	}

	return nil
}

func (s *Session) BlockSeat(label string) error {
	seat, err := s.seat(label)
	if err != nil {
		return err
	}

	if s.Status.IsTerminal() {
		return stateConflict("session %d is %s", s.ID, s.Status)
	}

	err = seat.AdministrativelyBlock()
	if err != nil {
		return err
	}

	s.recomputeOccupancyStatus()

	return nil
}

func (s *Session) UnblockSeat(label string) error {
	seat, err := s.seat(label)
	if err != nil {
		return err
	}

	if s.Status.IsTerminal() {
		return stateConflict("session %d is %s", s.ID, s.Status)
	}

	err = seat.AdministrativelyUnblock()
	if err != nil {
		return err
	}

	s.recomputeOccupancyStatus()

	return nil
}

// ExpireAllHolds releases every hold that expired before now and returns how
// many were released.
func (s *Session) ExpireAllHolds(now time.Time) int {
	if s.Status.IsTerminal() {
		return 0
	}

	released := 0

	for i := range s.seats {
		if s.seats[i].ReleaseIfHoldExpired(now) {
			released++
		}
	}

	if released > 0 && s.Status == SessionSoldOut {
		s.recomputeOccupancyStatus()
	}

	return released
}

// recomputeOccupancyStatus moves the session between sold out and open for sale.
// Held seats do not count as occupied.
func (s *Session) recomputeOccupancyStatus() {
	switch s.Status {
	case SessionCancelled, SessionFinished, SessionInProgress:
		return
	}

	full := true
	for i := range s.seats {
		st := s.seats[i].status
		if st != SeatBlocked && st != SeatOccupied {
			full = false
			break
		}
	}

	switch {
	case full:
		s.Status = SessionSoldOut
	case s.Status == SessionSoldOut:
		s.Status = SessionOpenForSale
	}
}

// Cancel cancels the session and frees every held or occupied seat. It returns
// the labels of the seats that were occupied, for which tickets existed.
func (s *Session) Cancel() ([]string, error) {
	if s.Status.IsTerminal() {
		return nil, stateConflict("session %d is already %s", s.ID, s.Status)
	}

	s.Status = SessionCancelled

	var occupied []string
	for i := range s.seats {
		if s.seats[i].status == SeatOccupied {
			occupied = append(occupied, s.seats[i].Label)
		}
		s.seats[i].forceRelease()
	}

	return occupied, nil
}

// Advance applies the time-driven transitions and reports whether the status
// changed.
func (s *Session) Advance(now time.Time) bool {
	before := s.Status

	switch s.Status {
	case SessionOpenForSale, SessionSoldOut:
		if !now.Before(s.EndTime) {
			s.Status = SessionFinished
		} else if !now.Before(s.StartTime) {
			s.Status = SessionInProgress
		}
	case SessionInProgress:
		if !now.Before(s.EndTime) {
			s.Status = SessionFinished
		}
	}

	return s.Status != before
}

// OccupiedCount returns the number of seats in final occupied state.
func (s *Session) OccupiedCount() int {
	n := 0
	for i := range s.seats {
		if s.seats[i].status == SeatOccupied {
			n++
		}
	}
	return n
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetById(ctx context.Context, id int) (*Session, error)
	Save(ctx context.Context, session *Session) error
	List(ctx context.Context, filters SessionFilters) ([]SessionSummary, *Metadata, error)
	ListActiveIDs(ctx context.Context) ([]int, error)
}

// SessionLocker serializes mutations of a single session aggregate. Lock fails
// with ErrLocked when the session stays locked for too long.
type SessionLocker interface {
	Lock(ctx context.Context, sessionID int) (unlock func(), err error)
}

package domain

import (
	"testing"
	"testing/quick"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const holdMinutes = 10

func newTestSession(t *testing.T, capacity int) *Session {
	t.Helper()

	movie := &Movie{ID: 1, Title: "Central Station", DurationMinutes: 120}
	room := &Room{ID: 1, Name: "Room 1", Capacity: capacity, SeatsPerRow: 10}

	session, err := NewSession(movie, room, t0.Add(24*time.Hour), decimal.NewFromInt(30))
	require.NoError(t, err)
	require.NoError(t, session.OpenForSale())

	return session
}

func labels(seats []Seat) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = s.Label
	}
	return out
}

func TestNewSession(t *testing.T) {
	movie := &Movie{ID: 3, DurationMinutes: 95}
	room := &Room{
		ID:          2,
		Capacity:    5,
		SeatsPerRow: 2,
		SeatClasses: map[string]SeatClass{"B2": SeatClassVIP, "C1": SeatClassAccessible},
	}
	start := t0.Add(48 * time.Hour)

	session, err := NewSession(movie, room, start, decimal.RequireFromString("25.50"))
	require.NoError(t, err)

	assert.Equal(t, SessionScheduled, session.Status)
	assert.Equal(t, 2, session.RoomID)
	assert.Equal(t, start.Add(95*time.Minute), session.EndTime)

	seats := session.Seats()
	if diff := cmp.Diff([]string{"A1", "A2", "B1", "B2", "C1"}, labels(seats)); diff != "" {
		t.Errorf("seat labels mismatch (-want +got):\n%s", diff)
	}

	for _, seat := range seats {
		assert.Equal(t, SeatAvailable, seat.Status())
	}

	vip, ok := session.Seat("B2")
	require.True(t, ok)
	assert.Equal(t, SeatClassVIP, vip.Class)

	accessible, _ := session.Seat("C1")
	assert.Equal(t, SeatClassAccessible, accessible.Class)
}

func TestNewSessionValidation(t *testing.T) {
	movie := &Movie{ID: 1, DurationMinutes: 90}
	room := &Room{ID: 1, Capacity: 4}

	tests := []struct {
		name  string
		movie *Movie
		room  *Room
		start time.Time
		price decimal.Decimal
	}{
		{name: "missing room", movie: movie, start: t0, price: decimal.NewFromInt(10)},
		{name: "missing movie", room: room, start: t0, price: decimal.NewFromInt(10)},
		{name: "room without capacity", movie: movie, room: &Room{ID: 9}, start: t0, price: decimal.NewFromInt(10)},
		{name: "movie without duration", movie: &Movie{ID: 2}, room: room, start: t0, price: decimal.NewFromInt(10)},
		{name: "negative price", movie: movie, room: room, start: t0, price: decimal.NewFromInt(-1)},
		{name: "missing start", movie: movie, room: room, price: decimal.NewFromInt(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.movie, tt.room, tt.start, tt.price)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRowLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA"}

	for row, want := range tests {
		assert.Equal(t, want, rowLabel(row), "row %d", row)
	}
}

func TestSessionLoadSeatsRejectsDuplicates(t *testing.T) {
	s := &Session{ID: 4}
	a, err := RestoreSeat(1, "A1", SeatClassStandard, SeatAvailable, nil, nil)
	require.NoError(t, err)

	err = s.LoadSeats([]Seat{a, a})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSessionHoldSeat(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, s *Session)
		label   string
		now     time.Time
		wantErr error
	}{
		{
			name:  "holds an available seat",
			label: "A1",
			now:   t0,
		},
		{
			name:    "unknown seat",
			label:   "Z9",
			now:     t0,
			wantErr: ErrRecordNotFound,
		},
		{
			name:    "session already started",
			label:   "A1",
			now:     t0.Add(25 * time.Hour),
			wantErr: ErrStateConflict,
		},
		{
			name: "cancelled session",
			prepare: func(t *testing.T, s *Session) {
				_, err := s.Cancel()
				require.NoError(t, err)
			},
			label:   "A1",
			now:     t0,
			wantErr: ErrStateConflict,
		},
		{
			name: "scheduled session still accepts holds",
			prepare: func(t *testing.T, s *Session) {
				s.Status = SessionScheduled
			},
			label: "A2",
			now:   t0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, 4)
			if tt.prepare != nil {
				tt.prepare(t, s)
			}

			err := s.HoldSeat(tt.label, 11, holdMinutes, tt.now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			seat, _ := s.Seat(tt.label)
			holder, ok := seat.Holder()
			require.True(t, ok)
			assert.Equal(t, 11, holder)
		})
	}
}

func TestSessionExpiredHoldIsReclaimedByAnotherCustomer(t *testing.T) {
	s := newTestSession(t, 4)

	require.NoError(t, s.HoldSeat("A1", 1, holdMinutes, t0))

	err := s.HoldSeat("A1", 2, holdMinutes, t0.Add(5*time.Minute))
	require.ErrorIs(t, err, ErrStateConflict)

	require.NoError(t, s.HoldSeat("A1", 2, holdMinutes, t0.Add(11*time.Minute)))

	seat, _ := s.Seat("A1")
	holder, _ := seat.Holder()
	expiry, _ := seat.HoldExpiresAt()

	assert.Equal(t, 2, holder)
	assert.Equal(t, t0.Add(21*time.Minute), expiry)
}

func TestSessionConfirmSeat(t *testing.T) {
	t.Run("another customer cannot confirm a live hold", func(t *testing.T) {
		s := newTestSession(t, 4)
		require.NoError(t, s.HoldSeat("A1", 1, holdMinutes, t0))

		changed, err := s.ConfirmSeat("A1", 2, t0.Add(time.Minute))

		require.ErrorIs(t, err, ErrStateConflict)
		assert.False(t, changed)

		seat, _ := s.Seat("A1")
		holder, _ := seat.Holder()
		assert.Equal(t, SeatHeld, seat.Status())
		assert.Equal(t, 1, holder)
	})

	t.Run("the holder confirms", func(t *testing.T) {
		s := newTestSession(t, 4)
		require.NoError(t, s.HoldSeat("A1", 1, holdMinutes, t0))

		changed, err := s.ConfirmSeat("A1", 1, t0.Add(time.Minute))

		require.NoError(t, err)
		assert.True(t, changed)

		seat, _ := s.Seat("A1")
		assert.Equal(t, SeatOccupied, seat.Status())
		requireHoldInvariant(t, seat)
	})

	t.Run("an expired hold does not block another customer", func(t *testing.T) {
		s := newTestSession(t, 4)
		require.NoError(t, s.HoldSeat("A1", 1, holdMinutes, t0))

		changed, err := s.ConfirmSeat("A1", 2, t0.Add(11*time.Minute))

		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("confirming twice is idempotent", func(t *testing.T) {
		s := newTestSession(t, 4)

		_, err := s.ConfirmSeat("A1", 1, t0)
		require.NoError(t, err)

		changed, err := s.ConfirmSeat("A1", 1, t0)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 1, s.OccupiedCount())
	})

	t.Run("a blocked seat cannot be confirmed", func(t *testing.T) {
		s := newTestSession(t, 4)
		require.NoError(t, s.BlockSeat("A2"))

		_, err := s.ConfirmSeat("A2", 1, t0)
		require.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("a cancelled session rejects confirmation", func(t *testing.T) {
		s := newTestSession(t, 4)
		_, err := s.Cancel()
		require.NoError(t, err)

		_, err = s.ConfirmSeat("A1", 1, t0)
		require.ErrorIs(t, err, ErrStateConflict)
	})
}

func TestSessionSoldOutTransitions(t *testing.T) {
	s := newTestSession(t, 2)

	_, err := s.ConfirmSeat("A1", 1, t0)
	require.NoError(t, err)
	assert.Equal(t, SessionOpenForSale, s.Status)

	_, err = s.ConfirmSeat("A2", 2, t0)
	require.NoError(t, err)
	assert.Equal(t, SessionSoldOut, s.Status)
	assert.False(t, s.AcceptsNewSalesOrHolds(t0))

	require.NoError(t, s.ReleaseSeat("A1"))
	assert.Equal(t, SessionOpenForSale, s.Status)
	assert.True(t, s.AcceptsNewSalesOrHolds(t0))
}

func TestSessionHeldSeatsDoNotSellOut(t *testing.T) {
	s := newTestSession(t, 2)

	_, err := s.ConfirmSeat("A1", 1, t0)
	require.NoError(t, err)
	require.NoError(t, s.HoldSeat("A2", 2, holdMinutes, t0))

	assert.Equal(t, SessionOpenForSale, s.Status)
}

func TestSessionBlockingRecomputesStatus(t *testing.T) {
	s := newTestSession(t, 3)

	_, err := s.ConfirmSeat("A1", 1, t0)
	require.NoError(t, err)
	_, err = s.ConfirmSeat("A2", 1, t0)
	require.NoError(t, err)

	require.NoError(t, s.BlockSeat("A3"))
	assert.Equal(t, SessionSoldOut, s.Status)

	require.NoError(t, s.UnblockSeat("A3"))
	assert.Equal(t, SessionOpenForSale, s.Status)

	require.ErrorIs(t, s.BlockSeat("A1"), ErrStateConflict)
}

func TestSessionExpireAllHolds(t *testing.T) {
	s := newTestSession(t, 4)

	require.NoError(t, s.HoldSeat("A1", 1, 5, t0))
	require.NoError(t, s.HoldSeat("A2", 2, 15, t0))
	require.NoError(t, s.HoldSeat("A3", 3, 10, t0))

	released := s.ExpireAllHolds(t0.Add(10 * time.Minute))

	assert.Equal(t, 1, released)

	a1, _ := s.Seat("A1")
	a2, _ := s.Seat("A2")
	a3, _ := s.Seat("A3")

	assert.Equal(t, SeatAvailable, a1.Status())
	assert.Equal(t, SeatHeld, a2.Status())
	assert.Equal(t, SeatHeld, a3.Status(), "a hold expiring exactly now is still live")

	for _, seat := range s.Seats() {
		requireHoldInvariant(t, seat)
	}
}

func TestSessionCancel(t *testing.T) {
	s := newTestSession(t, 4)

	_, err := s.ConfirmSeat("A1", 1, t0)
	require.NoError(t, err)
	_, err = s.ConfirmSeat("A3", 2, t0)
	require.NoError(t, err)
	require.NoError(t, s.HoldSeat("A2", 3, holdMinutes, t0))
	require.NoError(t, s.BlockSeat("A4"))

	occupied, err := s.Cancel()
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"A1", "A3"}, occupied); diff != "" {
		t.Errorf("occupied seats mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, SessionCancelled, s.Status)

	for _, seat := range s.Seats() {
		requireHoldInvariant(t, seat)
		if seat.Label == "A4" {
			assert.Equal(t, SeatBlocked, seat.Status())
			continue
		}
		assert.Equal(t, SeatAvailable, seat.Status())
	}

	_, err = s.Cancel()
	require.ErrorIs(t, err, ErrStateConflict)

	require.ErrorIs(t, s.HoldSeat("A1", 1, holdMinutes, t0), ErrStateConflict)
	require.ErrorIs(t, s.ReleaseSeat("A1"), ErrStateConflict)
	assert.Equal(t, 0, s.ExpireAllHolds(t0.Add(time.Hour)))
}

func TestSessionAdvance(t *testing.T) {
	tests := []struct {
		name        string
		status      SessionStatus
		now         time.Duration
		wantStatus  SessionStatus
		wantChanged bool
	}{
		{name: "before start", status: SessionOpenForSale, now: 23 * time.Hour, wantStatus: SessionOpenForSale},
		{name: "at start", status: SessionOpenForSale, now: 24 * time.Hour, wantStatus: SessionInProgress, wantChanged: true},
		{name: "sold out starts", status: SessionSoldOut, now: 25 * time.Hour, wantStatus: SessionInProgress, wantChanged: true},
		{name: "in progress ends", status: SessionInProgress, now: 26 * time.Hour, wantStatus: SessionFinished, wantChanged: true},
		{name: "missed the whole screening", status: SessionOpenForSale, now: 30 * time.Hour, wantStatus: SessionFinished, wantChanged: true},
		{name: "scheduled is left alone", status: SessionScheduled, now: 30 * time.Hour, wantStatus: SessionScheduled},
		{name: "cancelled is left alone", status: SessionCancelled, now: 30 * time.Hour, wantStatus: SessionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, 2)
			s.Status = tt.status

			changed := s.Advance(t0.Add(tt.now))

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, s.Status)
		})
	}
}

func TestSessionSoldOutIffAllNonBlockedSeatsOccupied(t *testing.T) {
	property := func(size uint8, occupiedMask, blockedMask uint32) bool {
		capacity := int(size%20) + 1

		s := newTestSession(t, capacity)
		seats := s.Seats()

		for i, seat := range seats {
			if blockedMask&(1<<i) != 0 {
				if err := s.BlockSeat(seat.Label); err != nil {
					return false
				}
			}
		}

		full := true
		var anyOccupied string
		for i, seat := range seats {
			if blockedMask&(1<<i) != 0 {
				continue
			}
			if occupiedMask&(1<<i) == 0 {
				full = false
				continue
			}
			if _, err := s.ConfirmSeat(seat.Label, 1, t0); err != nil {
				return false
			}
			anyOccupied = seat.Label
		}

		if (s.Status == SessionSoldOut) != full {
			return false
		}

		if full && anyOccupied != "" {
			if err := s.ReleaseSeat(anyOccupied); err != nil {
				return false
			}
			return s.Status == SessionOpenForSale
		}

		return true
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 300}))
}

func TestSessionHoldInvariantUnderRandomOperations(t *testing.T) {
	property := func(ops []uint16) bool {
		s := newTestSession(t, 6)
		seats := s.Seats()
		now := t0

		for _, op := range ops {
			label := seats[int(op>>4)%len(seats)].Label
			customer := int(op>>8)%3 + 1
			now = now.Add(time.Duration(op%7) * time.Minute)

			switch op % 6 {
			case 0:
				_ = s.HoldSeat(label, customer, holdMinutes, now)
			case 1:
				_, _ = s.ConfirmSeat(label, customer, now)
			case 2:
				_ = s.ReleaseSeat(label)
			case 3:
				_ = s.BlockSeat(label)
			case 4:
				_ = s.UnblockSeat(label)
			case 5:
				s.ExpireAllHolds(now)
			}

			for _, seat := range s.Seats() {
				_, hasHolder := seat.Holder()
				if (seat.Status() == SeatHeld) != (seat.holderID != 0) || hasHolder != (seat.holderID != 0) {
					return false
				}
				if (seat.Status() == SeatHeld) != !seat.holdExpiresAt.IsZero() {
					return false
				}
			}
		}

		return true
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 200}))
}

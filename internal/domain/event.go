package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutingKeySessionCancelled = "session.cancelled"
	RoutingKeySeatConfirmed    = "seat.confirmed"
)

// Event is a message published to downstream consumers.
type Event interface {
	RoutingKey() string
}

// SessionCancelledEvent lists the seats that had final tickets so the credit
// workflow can compensate their owners.
type SessionCancelledEvent struct {
	SessionID     int       `json:"session_id"`
	RoomID        int       `json:"room_id"`
	StartTime     time.Time `json:"start_time"`
	OccupiedSeats []string  `json:"occupied_seats"`
	CancelledAt   time.Time `json:"cancelled_at"`
}

func (SessionCancelledEvent) RoutingKey() string {
	return RoutingKeySessionCancelled
}

type SeatConfirmedEvent struct {
	SessionID   int             `json:"session_id"`
	SeatLabel   string          `json:"seat_label"`
	CustomerID  int             `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Discount    decimal.Decimal `json:"discount"`
	RuleID      *int            `json:"rule_id,omitempty"`
	Statutory   bool            `json:"statutory"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}

func (SeatConfirmedEvent) RoutingKey() string {
	return RoutingKeySeatConfirmed
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

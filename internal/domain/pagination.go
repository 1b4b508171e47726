package domain

import (
	"strings"
	"time"
)

type Pagination struct {
	Page     int
	PageSize int
	Sort     string
}

func (f Pagination) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f Pagination) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// SessionFilters narrows a session listing. Zero values match everything.
type SessionFilters struct {
	Pagination
	MovieID int
	RoomID  int
	Status  SessionStatus
	From    time.Time
	To      time.Time
}

// SessionSummary is a listing row; it carries seat counts instead of seats.
type SessionSummary struct {
	ID            int
	MovieID       int
	MovieTitle    string
	RoomID        int
	RoomName      string
	StartTime     time.Time
	EndTime       time.Time
	Status        SessionStatus
	SeatsTotal    int
	SeatsOccupied int
}

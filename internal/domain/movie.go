package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID              int
	Title           string
	DurationMinutes int
	ExhibitionStart time.Time
	ExhibitionEnd   time.Time
}

func (m *Movie) Duration() time.Duration {
	return time.Duration(m.DurationMinutes) * time.Minute
}

// InExhibition reports whether t falls on a day of the movie's exhibition
// window. Zero bounds are open.
func (m *Movie) InExhibition(t time.Time) bool {
	day := civilDate(t)

	if !m.ExhibitionStart.IsZero() && day.Before(civilDate(m.ExhibitionStart)) {
		return false
	}

	if !m.ExhibitionEnd.IsZero() && day.After(civilDate(m.ExhibitionEnd)) {
		return false
	}

	return true
}

// civilDate drops the clock and the zone so dates stored as midnight UTC
// compare against local moments by calendar day.
func civilDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

type MovieRepository interface {
	GetById(ctx context.Context, id int) (*Movie, error)
}

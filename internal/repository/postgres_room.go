package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

// GetById loads a room together with its seat class overrides, stored as a
// JSON object keyed by seat label.
func (p *PostgresRoomRepository) GetById(ctx context.Context, id int) (*domain.Room, error) {
	query := `
		SELECT id, name, capacity, seats_per_row, seat_classes, event_available
		FROM rooms
		WHERE id = $1
	`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.SeatsPerRow,
		&room.SeatClasses,
		&room.EventAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &room, nil
}

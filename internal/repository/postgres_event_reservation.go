package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

type PostgresEventReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEventReservationRepository(db *pgxpool.Pool) *PostgresEventReservationRepository {
	return &PostgresEventReservationRepository{
		db: db,
	}
}

func (p *PostgresEventReservationRepository) Create(ctx context.Context, reservation *domain.EventReservation) error {
	query := `
		INSERT INTO event_reservations (room_id, customer_id, title, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		reservation.RoomID,
		reservation.CustomerID,
		reservation.Title,
		reservation.StartTime,
		reservation.EndTime,
		string(reservation.Status)).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresEventReservationRepository) GetById(ctx context.Context, id int) (*domain.EventReservation, error) {
	query := `
		SELECT id, room_id, customer_id, title, start_time, end_time, status, created_at
		FROM event_reservations
		WHERE id = $1
	`

	var r domain.EventReservation

	err := p.db.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.RoomID,
		&r.CustomerID,
		&r.Title,
		&r.StartTime,
		&r.EndTime,
		&r.Status,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &r, nil
}

func (p *PostgresEventReservationRepository) UpdateStatus(
	ctx context.Context,
	id int,
	status domain.EventReservationStatus) error {

	query := `UPDATE event_reservations SET status = $1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, string(status), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// ListEventReservationsConflicting returns the confirmed reservations in the
// room overlapping [start, end).
func (p *PostgresEventReservationRepository) ListEventReservationsConflicting(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeReservationID *int) ([]domain.EventReservation, error) {

	query := `
		SELECT id, room_id, customer_id, title, start_time, end_time, status, created_at
		FROM event_reservations
		WHERE room_id = $1
			AND status <> 'cancelled'
			AND start_time < $3
			AND end_time > $2
			AND ($4::int IS NULL OR id <> $4)
		ORDER BY start_time
	`

	rows, err := p.db.Query(ctx, query, roomID, start, end, excludeReservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.EventReservation, 0)

	for rows.Next() {
		var r domain.EventReservation

		err = rows.Scan(
			&r.ID,
			&r.RoomID,
			&r.CustomerID,
			&r.Title,
			&r.StartTime,
			&r.EndTime,
			&r.Status,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

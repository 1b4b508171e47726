package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{
		db: db,
	}
}

func (p *PostgresSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO sessions (movie_id, room_id, start_time, end_time, base_price, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, version
		`

		err := tx.QueryRow(
			ctx,
			query,
			session.MovieID,
			session.RoomID,
			session.StartTime,
			session.EndTime,
			session.BasePrice,
			string(session.Status)).Scan(&session.ID, &session.Version)
		if err != nil {
			return err
		}

		seats := session.Seats()
		rows := make([][]any, len(seats))

		for i, seat := range seats {
			rows[i] = []any{session.ID, seat.Label, string(seat.Class), string(seat.Status())}
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"session_seats"},
			[]string{"session_id", "label", "class", "status"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	created, err := p.GetById(ctx, session.ID)
	if err != nil {
		return err
	}

	*session = *created

	return nil
}

func (p *PostgresSessionRepository) GetById(ctx context.Context, id int) (*domain.Session, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, end_time, base_price, status, version
		FROM sessions
		WHERE id = $1
	`

	var session domain.Session

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.RoomID,
		&session.StartTime,
		&session.EndTime,
		&session.BasePrice,
		&session.Status,
		&session.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seats, err := p.getSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	err = session.LoadSeats(seats)
	if err != nil {
		return nil, fmt.Errorf("session %d: %w", id, err)
	}

	return &session, nil
}

func (p *PostgresSessionRepository) getSeats(ctx context.Context, sessionID int) ([]domain.Seat, error) {
	query := `
		SELECT id, label, class, status, holder_id, hold_expires_at
		FROM session_seats
		WHERE session_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var (
			id            int
			label         string
			class         domain.SeatClass
			status        domain.SeatStatus
			holderID      *int
			holdExpiresAt *time.Time
		)

		err = rows.Scan(&id, &label, &class, &status, &holderID, &holdExpiresAt)
		if err != nil {
			return nil, err
		}

		seat, err := domain.RestoreSeat(id, label, class, status, holderID, holdExpiresAt)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

// Save writes the session status and every seat state. It fails with
// domain.ErrEditConflict when the stored version moved since the session was
// loaded.
func (p *PostgresSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE sessions
			SET status = $1, version = version + 1
			WHERE id = $2 AND version = $3
			RETURNING version
		`

		var version int

		err := tx.QueryRow(ctx, query, string(session.Status), session.ID, session.Version).Scan(&version)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEditConflict
			}

			return err
		}

		batch := &pgx.Batch{}

		for _, seat := range session.Seats() {
			var (
				holderID      *int
				holdExpiresAt *time.Time
			)

			if holder, ok := seat.Holder(); ok {
				holderID = &holder
			}

			if expiry, ok := seat.HoldExpiresAt(); ok {
				holdExpiresAt = &expiry
			}

			batch.Queue(`
				UPDATE session_seats
				SET status = $1, holder_id = $2, hold_expires_at = $3
				WHERE session_id = $4 AND label = $5`,
				string(seat.Status()), holderID, holdExpiresAt, session.ID, seat.Label)
		}

		err = tx.SendBatch(ctx, batch).Close()
		if err != nil {
			return err
		}

		session.Version = version

		return nil
	})
}

func (p *PostgresSessionRepository) List(
	ctx context.Context,
	filters domain.SessionFilters) ([]domain.SessionSummary, *domain.Metadata, error) {

	query := fmt.Sprintf(`
		SELECT
			count(*) OVER(),
			s.id,
			s.movie_id,
			m.title,
			s.room_id,
			r.name,
			s.start_time,
			s.end_time,
			s.status,
			(SELECT count(*) FROM session_seats ss WHERE ss.session_id = s.id),
			(SELECT count(*) FROM session_seats ss WHERE ss.session_id = s.id AND ss.status = 'occupied')
		FROM sessions s
		JOIN movies m ON m.id = s.movie_id
		JOIN rooms r ON r.id = s.room_id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR s.room_id = $2)
			AND ($3 = '' OR s.status = $3)
			AND ($4::timestamptz IS NULL OR s.start_time >= $4)
			AND ($5::timestamptz IS NULL OR s.start_time < $5)
		ORDER BY s.%s %s, s.id ASC
		LIMIT $6 OFFSET $7`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(
		ctx,
		query,
		filters.MovieID,
		filters.RoomID,
		string(filters.Status),
		nullableTime(filters.From),
		nullableTime(filters.To),
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	sessions := []domain.SessionSummary{}

	for rows.Next() {
		var s domain.SessionSummary

		err := rows.Scan(
			&totalRecords,
			&s.ID,
			&s.MovieID,
			&s.MovieTitle,
			&s.RoomID,
			&s.RoomName,
			&s.StartTime,
			&s.EndTime,
			&s.Status,
			&s.SeatsTotal,
			&s.SeatsOccupied,
		)
		if err != nil {
			return nil, nil, err
		}

		sessions = append(sessions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return sessions, metadata, nil
}

func (p *PostgresSessionRepository) ListActiveIDs(ctx context.Context) ([]int, error) {
	query := `
		SELECT id
		FROM sessions
		WHERE status NOT IN ('finished', 'cancelled')
		ORDER BY start_time, id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[int])
}

// ListScreeningsConflicting returns the non-cancelled sessions in the room
// whose screening window overlaps [start, end).
func (p *PostgresSessionRepository) ListScreeningsConflicting(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID *int) ([]domain.Screening, error) {

	query := `
		SELECT s.id, s.room_id, s.start_time, m.duration_minutes
		FROM sessions s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.room_id = $1
			AND s.status <> 'cancelled'
			AND s.start_time < $3
			AND s.start_time + make_interval(mins => m.duration_minutes) > $2
			AND ($4::int IS NULL OR s.id <> $4)
		ORDER BY s.start_time
	`

	rows, err := p.db.Query(ctx, query, roomID, start, end, excludeSessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := make([]domain.Screening, 0)

	for rows.Next() {
		var s domain.Screening

		err = rows.Scan(&s.SessionID, &s.RoomID, &s.StartTime, &s.DurationMinutes)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

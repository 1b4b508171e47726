package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, duration_minutes, exhibition_start, exhibition_end
		FROM movies
		WHERE id = $1
	`

	var (
		movie           domain.Movie
		exhibitionStart *time.Time
		exhibitionEnd   *time.Time
	)

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.DurationMinutes,
		&exhibitionStart,
		&exhibitionEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if exhibitionStart != nil {
		movie.ExhibitionStart = *exhibitionStart
	}

	if exhibitionEnd != nil {
		movie.ExhibitionEnd = *exhibitionEnd
	}

	return &movie, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
)

type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db: db,
	}
}

func (p *PostgresCustomerRepository) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	query := `SELECT id, name, profile FROM customers WHERE id = $1`

	var customer domain.Customer

	err := p.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &customer, nil
}

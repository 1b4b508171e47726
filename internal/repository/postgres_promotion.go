package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresPromotionRuleRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPromotionRuleRepository(db *pgxpool.Pool) *PostgresPromotionRuleRepository {
	return &PostgresPromotionRuleRepository{
		db: db,
	}
}

func (p *PostgresPromotionRuleRepository) Create(ctx context.Context, rule *domain.PromotionRule) error {
	query := `
		INSERT INTO promotion_rules (
			name, kind, percentage, fixed_amount, profiles, weekdays,
			start_minute, end_minute, expression, active, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	profiles := make([]string, len(rule.Profiles))
	for i, profile := range rule.Profiles {
		profiles[i] = string(profile)
	}

	weekdays := make([]int32, len(rule.Weekdays))
	for i, day := range rule.Weekdays {
		weekdays[i] = int32(day)
	}

	return p.db.QueryRow(
		ctx,
		query,
		rule.Name,
		string(rule.Kind),
		rule.Percentage,
		rule.FixedAmount,
		profiles,
		weekdays,
		minutePtr(rule.StartTime),
		minutePtr(rule.EndTime),
		rule.Expression,
		rule.Active,
		rule.ValidFrom,
		rule.ValidTo).Scan(&rule.ID, &rule.CreatedAt)
}

// ListInForce returns the active rules whose validity range covers date,
// ordered by id.
func (p *PostgresPromotionRuleRepository) ListInForce(ctx context.Context, date time.Time) ([]domain.PromotionRule, error) {
	query := `
		SELECT
			id, name, kind, percentage, fixed_amount, profiles, weekdays,
			start_minute, end_minute, expression, active, valid_from, valid_to, created_at
		FROM promotion_rules
		WHERE active
			AND (valid_from IS NULL OR valid_from <= $1::date)
			AND (valid_to IS NULL OR valid_to >= $1::date)
		ORDER BY id
	`

	y, m, d := date.Date()

	rows, err := p.db.Query(ctx, query, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]domain.PromotionRule, 0)

	for rows.Next() {
		var (
			rule        domain.PromotionRule
			percentage  decimal.NullDecimal
			fixedAmount decimal.NullDecimal
			profiles    []string
			weekdays    []int32
			startMinute *int
			endMinute   *int
		)

		err = rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.Kind,
			&percentage,
			&fixedAmount,
			&profiles,
			&weekdays,
			&startMinute,
			&endMinute,
			&rule.Expression,
			&rule.Active,
			&rule.ValidFrom,
			&rule.ValidTo,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		rule.Percentage = percentage
		rule.FixedAmount = fixedAmount

		for _, profile := range profiles {
			rule.Profiles = append(rule.Profiles, domain.CustomerProfile(profile))
		}

		for _, day := range weekdays {
			rule.Weekdays = append(rule.Weekdays, time.Weekday(day))
		}

		if startMinute != nil {
			m := domain.MinuteOfDay(*startMinute)
			rule.StartTime = &m
		}

		if endMinute != nil {
			m := domain.MinuteOfDay(*endMinute)
			rule.EndTime = &m
		}

		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

func minutePtr(m *domain.MinuteOfDay) *int {
	if m == nil {
		return nil
	}

	v := int(*m)

	return &v
}

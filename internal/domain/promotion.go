package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/cel-go/cel"
	"github.com/shopspring/decimal"
)

type PromotionKind string

const (
	PromotionCustomerProfile PromotionKind = "customer_profile"
	PromotionOffPeak         PromotionKind = "off_peak"
	PromotionExpression      PromotionKind = "expression"
)

func (k PromotionKind) IsValid() bool {
	switch k {
	case PromotionCustomerProfile, PromotionOffPeak, PromotionExpression:
		return true
	}
	return false
}

// MinuteOfDay is a time of day in minutes after midnight.
type MinuteOfDay int

func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, invalidInput("time of day %q must use HH:MM", s)
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// minuteOf reads the UTC clock time of t.
func minuteOf(t time.Time) MinuteOfDay {
	t = t.UTC()
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

func (m MinuteOfDay) valid() bool {
	return m >= 0 && m < 24*60
}

// PromotionRule is a configured discount. Exactly one of Percentage and
// FixedAmount is set.
type PromotionRule struct {
	ID          int
	Name        string
	Kind        PromotionKind
	Percentage  decimal.NullDecimal
	FixedAmount decimal.NullDecimal

	// customer_profile
	Profiles []CustomerProfile

	// off_peak; an empty weekday set means every day. A window whose start is
	// after its end wraps around midnight. Weekdays and windows are read in UTC.
	Weekdays  []time.Weekday
	StartTime *MinuteOfDay
	EndTime   *MinuteOfDay

	// expression; a CEL boolean over profile, weekday, minute_of_day,
	// base_price, movie_id and room_id.
	Expression string

	Active    bool
	ValidFrom *time.Time
	ValidTo   *time.Time
	CreatedAt time.Time
}

func (p *PromotionRule) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidInput("promotion name is required")
	}

	if !p.Kind.IsValid() {
		return invalidInput("unknown promotion kind %q", p.Kind)
	}

	switch {
	case p.Percentage.Valid == p.FixedAmount.Valid:
		return invalidInput("exactly one of percentage and fixed amount must be set")
	case p.Percentage.Valid:
		pct := p.Percentage.Decimal
		if !pct.IsPositive() || pct.GreaterThan(decimal.NewFromInt(1)) {
			return invalidInput("percentage must be in (0, 1]")
		}
	default:
		if !p.FixedAmount.Decimal.IsPositive() {
			return invalidInput("fixed amount must be positive")
		}
	}

	if p.ValidFrom != nil && p.ValidTo != nil && p.ValidTo.Before(*p.ValidFrom) {
		return invalidInput("valid-to must not be before valid-from")
	}

	switch p.Kind {
	case PromotionCustomerProfile:
		if len(p.Profiles) == 0 {
			return invalidInput("customer profile promotion needs at least one profile")
		}
		for _, profile := range p.Profiles {
			if !profile.IsValid() {
				return invalidInput("unknown customer profile %q", profile)
			}
		}
	case PromotionOffPeak:
		for _, day := range p.Weekdays {
			if day < time.Sunday || day > time.Saturday {
				return invalidInput("invalid weekday %d", day)
			}
		}
		if (p.StartTime != nil && !p.StartTime.valid()) || (p.EndTime != nil && !p.EndTime.valid()) {
			return invalidInput("time of day must be within 00:00 and 23:59")
		}
	case PromotionExpression:
		if _, err := compileExpression(p.Expression); err != nil {
			return err
		}
	}

	return nil
}

// InForce reports whether the rule is active and the moment's date falls
// within the validity range. Missing bounds are open.
func (p *PromotionRule) InForce(moment time.Time) bool {
	if !p.Active {
		return false
	}

	day := civilDate(moment.UTC())

	if p.ValidFrom != nil && day.Before(civilDate(*p.ValidFrom)) {
		return false
	}

	if p.ValidTo != nil && day.After(civilDate(*p.ValidTo)) {
		return false
	}

	return true
}

func (p *PromotionRule) AppliesTo(profile CustomerProfile, session *Session, purchaseMoment time.Time) bool {
	if session == nil || !p.InForce(purchaseMoment) {
		return false
	}

	switch p.Kind {
	case PromotionCustomerProfile:
		return slices.Contains(p.Profiles, profile)
	case PromotionOffPeak:
		return p.matchesWeekday(session.StartTime) && p.matchesTimeOfDay(session.StartTime)
	case PromotionExpression:
		return p.evalExpression(profile, session)
	}

	return false
}

func (p *PromotionRule) matchesWeekday(t time.Time) bool {
	return len(p.Weekdays) == 0 || slices.Contains(p.Weekdays, t.UTC().Weekday())
}

func (p *PromotionRule) matchesTimeOfDay(t time.Time) bool {
	m := minuteOf(t)

	switch {
	case p.StartTime != nil && p.EndTime != nil:
		if *p.StartTime <= *p.EndTime {
			return m >= *p.StartTime && m <= *p.EndTime
		}
		return m >= *p.StartTime || m <= *p.EndTime
	case p.StartTime != nil:
		return m >= *p.StartTime
	case p.EndTime != nil:
		return m <= *p.EndTime
	}

	return true
}

// ComputeDiscount returns the amount this rule takes off basePrice. Inactive
// rules discount nothing. Callers gate on AppliesTo first.
func (p *PromotionRule) ComputeDiscount(basePrice decimal.Decimal) decimal.Decimal {
	if !p.Active || !basePrice.IsPositive() {
		return decimal.Zero
	}

	if p.Percentage.Valid {
		return basePrice.Mul(p.Percentage.Decimal).Round(2)
	}

	if p.FixedAmount.Valid {
		return decimal.Min(p.FixedAmount.Decimal, basePrice)
	}

	return decimal.Zero
}

var (
	celEnvOnce sync.Once
	celEnv     *cel.Env
	celEnvErr  error
	celCache   sync.Map
)

func expressionEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("profile", cel.StringType),
			cel.Variable("weekday", cel.IntType),
			cel.Variable("minute_of_day", cel.IntType),
			cel.Variable("base_price", cel.DoubleType),
			cel.Variable("movie_id", cel.IntType),
			cel.Variable("room_id", cel.IntType),
		)
	})
	return celEnv, celEnvErr
}

func compileExpression(expr string) (cel.Program, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalidInput("promotion expression is required")
	}

	if prg, ok := celCache.Load(expr); ok {
		return prg.(cel.Program), nil
	}

	env, err := expressionEnv()
	if err != nil {
		return nil, err
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, invalidInput("promotion expression: %v", iss.Err())
	}

	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, invalidInput("promotion expression must evaluate to a bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, invalidInput("promotion expression: %v", err)
	}

	celCache.Store(expr, prg)

	return prg, nil
}

func (p *PromotionRule) evalExpression(profile CustomerProfile, session *Session) bool {
	prg, err := compileExpression(p.Expression)
	if err != nil {
		return false
	}

	price, _ := session.BasePrice.Float64()

	out, _, err := prg.Eval(map[string]any{
		"profile":       string(profile),
		"weekday":       int64(session.StartTime.UTC().Weekday()),
		"minute_of_day": int64(minuteOf(session.StartTime)),
		"base_price":    price,
		"movie_id":      int64(session.MovieID),
		"room_id":       int64(session.RoomID),
	})
	if err != nil {
		return false
	}

	ok, _ := out.Value().(bool)

	return ok
}

type PromotionRuleRepository interface {
	Create(ctx context.Context, rule *PromotionRule) error
	ListInForce(ctx context.Context, date time.Time) ([]PromotionRule, error)
}

package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

var statutoryHalfPriceRate = decimal.NewFromFloat(0.5)

// PricingResult is the price charged for one ticket. RuleID is nil when no
// configured rule explains the discount, which includes a statutory half-price
// discount without a matching profile rule.
type PricingResult struct {
	OriginalPrice decimal.Decimal
	Discount      decimal.Decimal
	FinalPrice    decimal.Decimal
	RuleID        *int
	Statutory     bool
}

// PricingEngine picks the single most favorable discount for a purchase.
type PricingEngine struct{}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// PriceFor evaluates the candidate rules and the statutory half-price
// entitlement and applies the largest discount. Equal rule discounts resolve to
// the rule with the smallest ID, so the result does not depend on the order of
// rules.
func (e *PricingEngine) PriceFor(
	customer *Customer,
	session *Session,
	rules []PromotionRule,
	purchaseMoment time.Time) (PricingResult, error) {

	if customer == nil {
		return PricingResult{}, invalidInput("customer is required")
	}

	if session == nil {
		return PricingResult{}, invalidInput("session is required")
	}

	if purchaseMoment.IsZero() {
		return PricingResult{}, invalidInput("purchase moment is required")
	}

	base := session.BasePrice
	result := PricingResult{
		OriginalPrice: base,
		Discount:      decimal.Zero,
	}

	var winner *PromotionRule

	for i := range rules {
		rule := &rules[i]

		if !rule.AppliesTo(customer.Profile, session, purchaseMoment) {
			continue
		}

		amount := rule.ComputeDiscount(base)
		if !amount.IsPositive() {
			continue
		}

		better := amount.GreaterThan(result.Discount) ||
			(amount.Equal(result.Discount) && winner != nil && rule.ID < winner.ID)
		if !better {
			continue
		}

		winner = rule
		result.Discount = amount
	}

	if winner != nil {
		result.RuleID = ptr(winner.ID)
	}

	if customer.Profile.HalfPriceEntitled() {
		// Half cents round away from zero: a 0.01 ticket is free.
		statutory := base.Mul(statutoryHalfPriceRate).Round(2)

		if statutory.GreaterThan(result.Discount) {
			result.Discount = statutory
			result.Statutory = true
			result.RuleID = attributeStatutory(customer.Profile, base, statutory, rules)
		}
	}

	result.FinalPrice = decimal.Max(base.Sub(result.Discount), decimal.Zero)

	return result, nil
}

// attributeStatutory looks for a profile rule covering the customer's profile
// whose discount equals the statutory amount, so receipts can name it. Rules
// for other profiles are never credited.
func attributeStatutory(profile CustomerProfile, base, amount decimal.Decimal, rules []PromotionRule) *int {
	var match *int

	for i := range rules {
		rule := &rules[i]

		if rule.Kind != PromotionCustomerProfile || !slices.Contains(rule.Profiles, profile) {
			continue
		}

		if !rule.ComputeDiscount(base).Equal(amount) {
			continue
		}

		if match == nil || rule.ID < *match {
			match = ptr(rule.ID)
		}
	}

	return match
}

func ptr[T any](v T) *T {
	return &v
}

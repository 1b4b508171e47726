package app

import (
	"time"

	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toApiSession(session *domain.Session) api.SessionResponse {
	seats := session.Seats()

	resp := api.SessionResponse{
		Id:        session.ID,
		MovieId:   session.MovieID,
		RoomId:    session.RoomID,
		StartTime: session.StartTime.UTC(),
		EndTime:   session.EndTime.UTC(),
		BasePrice: session.BasePrice,
		Status:    string(session.Status),
		Version:   session.Version,
		Seats:     make([]api.Seat, len(seats)),
	}

	for i := range seats {
		resp.Seats[i] = toApiSeat(seats[i])
	}

	return resp
}

func toApiSeat(seat domain.Seat) api.Seat {
	resp := api.Seat{
		Label:  seat.Label,
		Class:  string(seat.Class),
		Status: string(seat.Status()),
	}

	if holder, ok := seat.Holder(); ok {
		resp.HolderId = &holder
	}

	if expiresAt, ok := seat.HoldExpiresAt(); ok {
		expiresAt = expiresAt.UTC()
		resp.HoldExpiresAt = &expiresAt
	}

	return resp
}

func toApiSessionSummaries(sessions []domain.SessionSummary) []api.SessionSummary {
	summaries := make([]api.SessionSummary, len(sessions))

	for i, s := range sessions {
		summaries[i] = api.SessionSummary{
			Id:            s.ID,
			MovieId:       s.MovieID,
			MovieTitle:    s.MovieTitle,
			RoomId:        s.RoomID,
			RoomName:      s.RoomName,
			StartTime:     s.StartTime.UTC(),
			EndTime:       s.EndTime.UTC(),
			Status:        string(s.Status),
			SeatsTotal:    s.SeatsTotal,
			SeatsOccupied: s.SeatsOccupied,
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

func toApiPrice(price domain.PricingResult) api.PriceQuoteResponse {
	return api.PriceQuoteResponse{
		OriginalPrice: price.OriginalPrice,
		Discount:      price.Discount,
		FinalPrice:    price.FinalPrice,
		RuleId:        price.RuleID,
		Statutory:     price.Statutory,
	}
}

func toApiEventReservation(reservation *domain.EventReservation) api.EventReservationResponse {
	return api.EventReservationResponse{
		Id:         reservation.ID,
		RoomId:     reservation.RoomID,
		CustomerId: reservation.CustomerID,
		Title:      reservation.Title,
		StartTime:  reservation.StartTime.UTC(),
		EndTime:    reservation.EndTime.UTC(),
		Status:     string(reservation.Status),
		CreatedAt:  reservation.CreatedAt,
	}
}

func toPromotionRule(input api.CreatePromotionRuleRequest) (*domain.PromotionRule, error) {
	rule := &domain.PromotionRule{
		Name:       input.Name,
		Kind:       domain.PromotionKind(input.Kind),
		Expression: input.Expression,
		Active:     true,
	}

	if input.Active != nil {
		rule.Active = *input.Active
	}

	if input.Percentage != nil {
		rule.Percentage = decimal.NewNullDecimal(*input.Percentage)
	}

	if input.FixedAmount != nil {
		rule.FixedAmount = decimal.NewNullDecimal(*input.FixedAmount)
	}

	for _, p := range input.Profiles {
		rule.Profiles = append(rule.Profiles, domain.CustomerProfile(p))
	}

	for _, d := range input.Weekdays {
		rule.Weekdays = append(rule.Weekdays, time.Weekday(d))
	}

	var err error

	if rule.StartTime, err = parseMinuteOfDay(input.StartTime); err != nil {
		return nil, err
	}

	if rule.EndTime, err = parseMinuteOfDay(input.EndTime); err != nil {
		return nil, err
	}

	if input.ValidFrom != nil {
		rule.ValidFrom = &input.ValidFrom.Time
	}

	if input.ValidTo != nil {
		rule.ValidTo = &input.ValidTo.Time
	}

	return rule, nil
}

func parseMinuteOfDay(s string) (*domain.MinuteOfDay, error) {
	if s == "" {
		return nil, nil
	}

	m, err := domain.ParseMinuteOfDay(s)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func toApiPromotionRule(rule *domain.PromotionRule) api.PromotionRuleResponse {
	resp := api.PromotionRuleResponse{
		Id:         rule.ID,
		Name:       rule.Name,
		Kind:       string(rule.Kind),
		Expression: rule.Expression,
		Active:     rule.Active,
		CreatedAt:  rule.CreatedAt,
	}

	if rule.Percentage.Valid {
		resp.Percentage = &rule.Percentage.Decimal
	}

	if rule.FixedAmount.Valid {
		resp.FixedAmount = &rule.FixedAmount.Decimal
	}

	for _, p := range rule.Profiles {
		resp.Profiles = append(resp.Profiles, string(p))
	}

	for _, d := range rule.Weekdays {
		resp.Weekdays = append(resp.Weekdays, int(d))
	}

	if rule.StartTime != nil {
		resp.StartTime = rule.StartTime.String()
	}

	if rule.EndTime != nil {
		resp.EndTime = rule.EndTime.String()
	}

	if rule.ValidFrom != nil {
		resp.ValidFrom = &openapi_types.Date{Time: *rule.ValidFrom}
	}

	if rule.ValidTo != nil {
		resp.ValidTo = &openapi_types.Date{Time: *rule.ValidTo}
	}

	return resp
}

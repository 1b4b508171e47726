package app

import (
	"net/http"

	"github.com/metinatakli/cinema-operations/api"
)

func (app *Application) CreatePromotionRule(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreatePromotionRuleRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	rule, err := toPromotionRule(input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = rule.Validate()
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.promotionRepo.Create(r.Context(), rule)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("promotion rule created", "rule_id", rule.ID, "kind", rule.Kind)

	err = app.writeJSON(w, http.StatusCreated, toApiPromotionRule(rule), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

package validator

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrOneOf          = "must be one of: %s"
	ErrGreaterThan    = "must be greater than %s"
	ErrGreaterOrEqual = "must be greater than or equal to %s"
	ErrAfterField     = "must be after %s"
	ErrSeatLabel      = "must be a row letter followed by a seat number, such as A1"
	ErrProfile        = "must be a known customer profile"
	ErrWeekday        = "must be a weekday between 0 (Sunday) and 6 (Saturday)"
	ErrTimeOfDay      = "must be a time of day in HH:MM format"
	ErrDefaultInvalid = "is invalid"
)

var seatLabelRgx = regexp.MustCompile(`^[A-Z]+[1-9][0-9]*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validator.RegisterValidation("seat_label", validateSeatLabel)
	validator.RegisterValidation("profile", validateProfile)
	validator.RegisterValidation("weekday", validateWeekday)
	validator.RegisterValidation("time_of_day", validateTimeOfDay)

	return validator
}

// decimalValue lets numeric tags such as gte=0 apply to decimal amounts.
func decimalValue(v reflect.Value) any {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()

	return f
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(fl.Field().String())
}

func validateProfile(fl validator.FieldLevel) bool {
	return domain.CustomerProfile(fl.Field().String()).IsValid()
}

func validateWeekday(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 0 && day <= 6
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := domain.ParseMinuteOfDay(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_without":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "gte":
		return fmt.Sprintf(ErrGreaterOrEqual, err.Param())
	case "gtfield":
		return fmt.Sprintf(ErrAfterField, err.Param())
	case "seat_label":
		return ErrSeatLabel
	case "profile":
		return ErrProfile
	case "weekday":
		return ErrWeekday
	case "time_of_day":
		return ErrTimeOfDay
	default:
		return ErrDefaultInvalid
	}
}

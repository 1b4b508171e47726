package domain

import "context"

type CustomerProfile string

const (
	ProfileRegular        CustomerProfile = "regular"
	ProfileStudent        CustomerProfile = "student"
	ProfileSenior         CustomerProfile = "senior"
	ProfileTeacher        CustomerProfile = "teacher"
	ProfileDisabled       CustomerProfile = "disabled"
	ProfileLowIncomeYouth CustomerProfile = "low_income_youth"
)

func (p CustomerProfile) IsValid() bool {
	switch p {
	case ProfileRegular, ProfileStudent, ProfileSenior, ProfileTeacher, ProfileDisabled, ProfileLowIncomeYouth:
		return true
	}
	return false
}

// HalfPriceEntitled reports whether the profile is legally entitled to pay half
// of the ticket price.
func (p CustomerProfile) HalfPriceEntitled() bool {
	switch p {
	case ProfileStudent, ProfileSenior, ProfileDisabled, ProfileLowIncomeYouth:
		return true
	}
	return false
}

type Customer struct {
	ID      int
	Name    string
	Profile CustomerProfile
}

type CustomerRepository interface {
	GetById(ctx context.Context, id int) (*Customer, error)
}

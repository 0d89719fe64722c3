package domain

import (
	"time"
)

// TaxpayerProfile carries the personal attributes the engine reads. The
// occupation is free text and only feeds heuristic eligibility checks in the
// optimizer layer; the pipeline itself never interprets it.
type TaxpayerProfile struct {
	FirstName  string    `yaml:"first_name" json:"first_name"`
	LastName   string    `yaml:"last_name" json:"last_name"`
	BirthDate  time.Time `yaml:"birth_date" json:"birth_date"`
	IsBlind    bool      `yaml:"is_blind" json:"is_blind"`
	Occupation string    `yaml:"occupation,omitempty" json:"occupation,omitempty"`
}

// AgeAtYearEnd calculates the taxpayer's age on December 31 of the tax year.
// If the birthday has not yet occurred by year end the age is one less.
func (p TaxpayerProfile) AgeAtYearEnd(taxYear int) int {
	return ageAtYearEnd(p.BirthDate, taxYear)
}

// Calendar (month, day) comparison, not YearDay: a December 31 birthday in a
// leap year has YearDay 366 and would otherwise mis-age against a non-leap
// year end.
func ageAtYearEnd(birthDate time.Time, taxYear int) int {
	yearEnd := time.Date(taxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	age := yearEnd.Year() - birthDate.Year()
	if yearEnd.Month() < birthDate.Month() ||
		(yearEnd.Month() == birthDate.Month() && yearEnd.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// Dependent is a claimed dependent. The credit eligibility flags are supplied
// by the caller; the engine counts them but never derives them.
type Dependent struct {
	FirstName                  string    `yaml:"first_name" json:"first_name"`
	LastName                   string    `yaml:"last_name" json:"last_name"`
	BirthDate                  time.Time `yaml:"birth_date" json:"birth_date"`
	Relationship               string    `yaml:"relationship" json:"relationship"`
	MonthsLivedWithTaxpayer    int       `yaml:"months_lived_with_taxpayer" json:"months_lived_with_taxpayer"`
	QualifiesForChildCredit    bool      `yaml:"qualifies_for_child_credit" json:"qualifies_for_child_credit"`
	QualifiesForOtherDepCredit bool      `yaml:"qualifies_for_other_dep_credit" json:"qualifies_for_other_dep_credit"`
}

// AgeAtYearEnd calculates the dependent's age on December 31 of the tax year.
func (d Dependent) AgeAtYearEnd(taxYear int) int {
	return ageAtYearEnd(d.BirthDate, taxYear)
}

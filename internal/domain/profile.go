package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the five inputs a contributor supplies for a pension estimate.
type Profile struct {
	BirthDate            time.Time       `yaml:"birth_date" json:"birth_date"`
	ContributionWeeks    int             `yaml:"contribution_weeks" json:"contribution_weeks"`
	LastContributionDate time.Time       `yaml:"last_contribution_date" json:"last_contribution_date"`
	SalaryUMA            decimal.Decimal `yaml:"salary_uma" json:"salary_uma"` // Reference salary as a multiple of the daily UMA
	RetirementAge        int             `yaml:"retirement_age" json:"retirement_age"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Profile    Profile     `yaml:"profile" json:"profile"`
	Parameters *Parameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Age returns the contributor's age at the given date
func (p Profile) Age(atDate time.Time) int {
	age := atDate.Year() - p.BirthDate.Year()
	if atDate.Month() < p.BirthDate.Month() ||
		(atDate.Month() == p.BirthDate.Month() && atDate.Day() < p.BirthDate.Day()) {
		age--
	}
	return age
}

// WithRetirementAge returns a copy of the profile retiring at age.
func (p Profile) WithRetirementAge(age int) Profile {
	p.RetirementAge = age
	return p
}

package transform

import (
	"fmt"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
)

// SetRetirementAge replaces the retirement age with an absolute age.
type SetRetirementAge struct {
	Age int
}

func (st *SetRetirementAge) Name() string {
	return "set_retirement_age"
}

func (st *SetRetirementAge) Description() string {
	return fmt.Sprintf("Retire at age %d", st.Age)
}

func (st *SetRetirementAge) Validate(base domain.Profile) error {
	if st.Age <= 0 {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("age must be positive, got %d", st.Age), nil)
	}
	return nil
}

func (st *SetRetirementAge) Apply(base domain.Profile) (domain.Profile, error) {
	return base.WithRetirementAge(st.Age), nil
}

// PostponeRetirement shifts the retirement age by whole years.
// Negative years bring retirement forward.
type PostponeRetirement struct {
	Years int
}

func (pt *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pt *PostponeRetirement) Description() string {
	if pt.Years < 0 {
		return fmt.Sprintf("Retire %d year(s) earlier", -pt.Years)
	}
	return fmt.Sprintf("Postpone retirement by %d year(s)", pt.Years)
}

func (pt *PostponeRetirement) Validate(base domain.Profile) error {
	if pt.Years == 0 {
		return NewTransformError(pt.Name(), "validate", "years cannot be zero", nil)
	}
	if base.RetirementAge+pt.Years <= 0 {
		return NewTransformError(pt.Name(), "validate",
			fmt.Sprintf("retirement age %d shifted by %d is not positive", base.RetirementAge, pt.Years), nil)
	}
	return nil
}

func (pt *PostponeRetirement) Apply(base domain.Profile) (domain.Profile, error) {
	return base.WithRetirementAge(base.RetirementAge + pt.Years), nil
}

// SetSalaryUMA registers a different Modalidad 40 salary, in UMAs.
type SetSalaryUMA struct {
	SalaryUMA decimal.Decimal
}

func (ss *SetSalaryUMA) Name() string {
	return "set_salary_uma"
}

func (ss *SetSalaryUMA) Description() string {
	return fmt.Sprintf("Register a salary of %s UMA", ss.SalaryUMA.String())
}

func (ss *SetSalaryUMA) Validate(base domain.Profile) error {
	if !ss.SalaryUMA.IsPositive() {
		return NewTransformError(ss.Name(), "validate", fmt.Sprintf("salary must be positive, got %s", ss.SalaryUMA.String()), nil)
	}
	return nil
}

func (ss *SetSalaryUMA) Apply(base domain.Profile) (domain.Profile, error) {
	base.SalaryUMA = ss.SalaryUMA
	return base, nil
}

// AddContributionWeeks credits extra weeks on top of the current count,
// e.g. weeks recovered from an unrecorded employer.
type AddContributionWeeks struct {
	Weeks int
}

func (aw *AddContributionWeeks) Name() string {
	return "add_weeks"
}

func (aw *AddContributionWeeks) Description() string {
	return fmt.Sprintf("Credit %d additional contribution weeks", aw.Weeks)
}

func (aw *AddContributionWeeks) Validate(base domain.Profile) error {
	if base.ContributionWeeks+aw.Weeks < 0 {
		return NewTransformError(aw.Name(), "validate",
			fmt.Sprintf("resulting weeks %d would be negative", base.ContributionWeeks+aw.Weeks), nil)
	}
	return nil
}

func (aw *AddContributionWeeks) Apply(base domain.Profile) (domain.Profile, error) {
	base.ContributionWeeks += aw.Weeks
	return base, nil
}

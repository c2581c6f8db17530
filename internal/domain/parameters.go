package domain

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// RateTable maps a calendar year to the Modalidad 40 contribution rate, as a
// fraction of the monthly registered salary.
type RateTable map[int]decimal.Decimal

// Years returns the defined years in ascending order.
func (t RateTable) Years() []int {
	return slices.Sorted(maps.Keys(t))
}

// Rate returns the contribution rate for year. Any year without an entry,
// including years past the end of the table, uses the latest year's rate.
func (t RateTable) Rate(year int) decimal.Decimal {
	if rate, ok := t[year]; ok {
		return rate
	}
	years := t.Years()
	if len(years) == 0 {
		return decimal.Zero
	}
	return t[years[len(years)-1]]
}

// AgeRange is an inclusive range of retirement ages.
type AgeRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Ages lists every age in the range.
func (r AgeRange) Ages() []int {
	if r.Max < r.Min {
		return nil
	}
	ages := make([]int, 0, r.Max-r.Min+1)
	for age := r.Min; age <= r.Max; age++ {
		ages = append(ages, age)
	}
	return ages
}

// Contains reports whether age is inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Parameters contains the regulatory data the calculations depend on. It is
// published yearly and supplied as configuration, not code.
type Parameters struct {
	UMA                 decimal.Decimal `yaml:"uma" json:"uma"` // Daily value of the Unidad de Medida y Actualización
	UMAYear             int             `yaml:"uma_year" json:"uma_year"`
	DaysPerMonth        decimal.Decimal `yaml:"days_per_month" json:"days_per_month"`
	RateTable           RateTable       `yaml:"rate_table" json:"rate_table"`
	ComparisonAges      []int           `yaml:"comparison_ages" json:"comparison_ages"`
	ProjectionAges      AgeRange        `yaml:"projection_ages" json:"projection_ages"`
	Milestones          []int           `yaml:"milestones" json:"milestones"`
	NormalRetirementAge int             `yaml:"normal_retirement_age" json:"normal_retirement_age"`
	BenefitHorizonYears int             `yaml:"benefit_horizon_years" json:"benefit_horizon_years"`
	MaxVoluntaryYears   int             `yaml:"max_voluntary_years" json:"max_voluntary_years"`
	SalaryUMABounds     SalaryBounds    `yaml:"salary_uma_bounds" json:"salary_uma_bounds"`
	RetirementAges      AgeRange        `yaml:"retirement_ages" json:"retirement_ages"`
}

// SalaryBounds limits the registrable salary, in UMAs.
type SalaryBounds struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// Contains reports whether v lies inside the bounds.
func (b SalaryBounds) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(b.Min) && v.LessThanOrEqual(b.Max)
}

// Clone returns a deep copy so callers can adjust parameters without sharing maps or slices.
func (p Parameters) Clone() Parameters {
	c := p
	c.RateTable = maps.Clone(p.RateTable)
	c.ComparisonAges = slices.Clone(p.ComparisonAges)
	c.Milestones = slices.Clone(p.Milestones)
	return c
}

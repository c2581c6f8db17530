package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Milestone is the projected date for reaching a contribution-week target.
// Date is nil when the target is already reached.
type Milestone struct {
	Weeks   int        `json:"weeks"`
	Reached bool       `json:"reached"`
	Date    *time.Time `json:"date,omitempty"`
}

// Recovery expresses how long a pension stream takes to repay an amount.
// Applicable is false when the divisor is not positive; Months and Years are zero then.
type Recovery struct {
	Months     decimal.Decimal `json:"months"`
	Years      decimal.Decimal `json:"years"`
	Applicable bool            `json:"applicable"`
}

// YearlyContribution is one calendar year of the Modalidad 40 window.
type YearlyContribution struct {
	Year        int             `json:"year"`
	Rate        decimal.Decimal `json:"rate"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`
}

// VoluntaryContributionPlan describes the voluntary contribution window ending at retirement.
type VoluntaryContributionPlan struct {
	StartYear          int                  `json:"start_year"`
	Years              int                  `json:"years"`
	Breakdown          []YearlyContribution `json:"breakdown"`
	TotalCost          decimal.Decimal      `json:"total_cost"`
	AverageMonthlyCost decimal.Decimal      `json:"average_monthly_cost"`
}

// PensionResult is the detailed estimate for the chosen retirement age.
type PensionResult struct {
	CurrentAge           int                       `json:"current_age"`
	RetirementAge        int                       `json:"retirement_age"`
	YearsUntilRetirement int                       `json:"years_until_retirement"`
	WeeksAtRetirement    int                       `json:"weeks_at_retirement"`
	JubilationDate       time.Time                 `json:"jubilation_date"`
	Milestones           []Milestone               `json:"milestones"`
	DailySalary          decimal.Decimal           `json:"daily_salary"`
	MonthlySalaryBase    decimal.Decimal           `json:"monthly_salary_base"`
	ReplacementPercent   decimal.Decimal           `json:"replacement_percent"`
	AgeFactor            decimal.Decimal           `json:"age_factor"`
	EffectiveReplacement decimal.Decimal           `json:"effective_replacement"` // Percent of the salary base actually paid
	MonthlyPension       decimal.Decimal           `json:"monthly_pension"`
	VoluntaryPlan        VoluntaryContributionPlan `json:"voluntary_plan"`
	Recovery             Recovery                  `json:"recovery"`
}

// ProjectionPoint is one age of the projection sweep.
type ProjectionPoint struct {
	Age            int             `json:"age"`
	MonthlyPension decimal.Decimal `json:"monthly_pension"` // Rounded to whole pesos
	Weeks          int             `json:"weeks"`
}

// ComparisonRow compares retiring at Age against retiring at the normal age.
type ComparisonRow struct {
	Age                int             `json:"age"`
	JubilationDate     time.Time       `json:"jubilation_date"`
	Weeks              int             `json:"weeks"`
	ReplacementPercent decimal.Decimal `json:"replacement_percent"`
	AgeFactor          decimal.Decimal `json:"age_factor"`
	MonthlyPension     decimal.Decimal `json:"monthly_pension"`
	TotalForegone      decimal.Decimal `json:"total_foregone"`
	MonthlyDifference  decimal.Decimal `json:"monthly_difference"`
	Recovery           Recovery        `json:"recovery"`
	CumulativeBenefit  decimal.Decimal `json:"cumulative_benefit"`
	IsOptimal          bool            `json:"is_optimal"`
}

// Analysis bundles every output derived from one profile at one instant.
type Analysis struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Profile     Profile           `json:"profile"`
	Parameters  Parameters        `json:"parameters"`
	Result      PensionResult     `json:"result"`
	Projection  []ProjectionPoint `json:"projection"`
	Comparison  []ComparisonRow   `json:"comparison"`
}

// OptimalRow returns the comparison row flagged optimal, if any.
func (a *Analysis) OptimalRow() (ComparisonRow, bool) {
	for _, row := range a.Comparison {
		if row.IsOptimal {
			return row, true
		}
	}
	return ComparisonRow{}, false
}

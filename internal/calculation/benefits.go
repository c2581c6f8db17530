package calculation

import (
	"github.com/shopspring/decimal"
)

// Ley 73 benefit formula constants
const (
	EligibilityWeeks = 500 // Minimum credited weeks for any pension
	WeeksPerYear     = 52  // Flat accrual assumption and size of one increment block
)

var (
	hundred          = decimal.NewFromInt(100)
	basePercent      = decimal.NewFromInt(53)
	incrementPercent = decimal.RequireFromString("2.125")
	fullAgeFactor    = decimal.NewFromInt(1)
	floorAgeFactor   = decimal.RequireFromString("0.75")

	// Reduction ladder for retiring before 65
	earlyAgeFactors = map[int]decimal.Decimal{
		64: decimal.RequireFromString("0.90"),
		63: decimal.RequireFromString("0.85"),
		62: decimal.RequireFromString("0.80"),
		61: decimal.RequireFromString("0.75"),
	}
)

// ReplacementPercentFromWeeks returns the share of the salary base, in percent,
// granted for the given number of contribution weeks.
func ReplacementPercentFromWeeks(weeks int) decimal.Decimal {
	if weeks < EligibilityWeeks {
		return decimal.Zero
	}
	blocks := (weeks - EligibilityWeeks) / WeeksPerYear
	pct := basePercent.Add(incrementPercent.Mul(decimal.NewFromInt(int64(blocks))))
	return decimal.Min(pct, hundred)
}

// AgeFactor returns the discount applied for retiring at age.
// It never exceeds 1.0; deferring past 65 earns no bonus.
func AgeFactor(age int) decimal.Decimal {
	if age >= 65 {
		return fullAgeFactor
	}
	if factor, ok := earlyAgeFactors[age]; ok {
		return factor
	}
	return floorAgeFactor
}

// MonthlyPension combines the salary base with the weeks and age factors.
func MonthlyPension(monthlySalaryBase decimal.Decimal, weeks, age int) decimal.Decimal {
	return monthlySalaryBase.
		Mul(ReplacementPercentFromWeeks(weeks)).
		Mul(AgeFactor(age)).
		Div(hundred)
}

// DailySalary converts a salary expressed in UMAs into pesos per day.
func DailySalary(uma, salaryUMA decimal.Decimal) decimal.Decimal {
	return uma.Mul(salaryUMA)
}

// MonthlySalaryBase converts a salary expressed in UMAs into the monthly base
// used by the pension formula.
func MonthlySalaryBase(uma, salaryUMA, daysPerMonth decimal.Decimal) decimal.Decimal {
	return DailySalary(uma, salaryUMA).Mul(daysPerMonth)
}

// ProjectedWeeks adds a flat 52 weeks per year to the weeks credited today.
func ProjectedWeeks(weeksNow, years int) int {
	return weeksNow + years*WeeksPerYear
}

// EffectiveReplacement is the percent of the salary base actually paid after the age factor.
func EffectiveReplacement(weeks, age int) decimal.Decimal {
	return ReplacementPercentFromWeeks(weeks).Mul(AgeFactor(age))
}

package calculation

import (
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

var twelve = decimal.NewFromInt(monthsPerYear)

// MonthlyVoluntaryCost is the Modalidad 40 payment for one month of year.
func MonthlyVoluntaryCost(year int, monthlySalaryBase decimal.Decimal, rates domain.RateTable) decimal.Decimal {
	return monthlySalaryBase.Mul(rates.Rate(year))
}

// TotalVoluntaryCost sums twelve monthly payments for each year of the window.
func TotalVoluntaryCost(startYear, numYears int, monthlySalaryBase decimal.Decimal, rates domain.RateTable) decimal.Decimal {
	total := decimal.Zero
	for i := 0; i < numYears; i++ {
		total = total.Add(MonthlyVoluntaryCost(startYear+i, monthlySalaryBase, rates).Mul(twelve))
	}
	return total
}

// VoluntaryWindow returns the first calendar year and the length of the
// contribution window. The window holds at most maxYears years and ends at
// the retirement year; it is empty when retirement is not in the future.
func VoluntaryWindow(baseYear, yearsUntilRetirement, maxYears int) (startYear, numYears int) {
	numYears = min(maxYears, yearsUntilRetirement)
	if numYears < 0 {
		numYears = 0
	}
	startYear = baseYear + max(0, yearsUntilRetirement-maxYears)
	return startYear, numYears
}

// PlanVoluntaryContributions builds the per-year cost breakdown of the window.
func PlanVoluntaryContributions(baseYear, yearsUntilRetirement, maxYears int, monthlySalaryBase decimal.Decimal, rates domain.RateTable) domain.VoluntaryContributionPlan {
	startYear, numYears := VoluntaryWindow(baseYear, yearsUntilRetirement, maxYears)

	plan := domain.VoluntaryContributionPlan{
		StartYear: startYear,
		Years:     numYears,
		Breakdown: make([]domain.YearlyContribution, 0, numYears),
		TotalCost: decimal.Zero,
	}
	for i := 0; i < numYears; i++ {
		year := startYear + i
		monthly := MonthlyVoluntaryCost(year, monthlySalaryBase, rates)
		annual := monthly.Mul(twelve)
		plan.Breakdown = append(plan.Breakdown, domain.YearlyContribution{
			Year:        year,
			Rate:        rates.Rate(year),
			MonthlyCost: monthly,
			AnnualCost:  annual,
		})
		plan.TotalCost = plan.TotalCost.Add(annual)
	}

	plan.AverageMonthlyCost = decimal.Zero
	if numYears > 0 {
		plan.AverageMonthlyCost = plan.TotalCost.Div(decimal.NewFromInt(int64(numYears * monthsPerYear)))
	}
	return plan
}

// RecoveryPeriod reports how long a monthly stream takes to repay amount.
// A non-positive stream or amount yields a non-applicable zero recovery.
func RecoveryPeriod(amount, monthly decimal.Decimal) domain.Recovery {
	if !monthly.IsPositive() || !amount.IsPositive() {
		return domain.Recovery{Months: decimal.Zero, Years: decimal.Zero}
	}
	return domain.Recovery{
		Months:     amount.Div(monthly),
		Years:      amount.Div(monthly.Mul(twelve)),
		Applicable: true,
	}
}

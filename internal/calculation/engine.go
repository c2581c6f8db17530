package calculation

import (
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Clock supplies the instant a calculation pass treats as "now".
type Clock func() time.Time

// PensionEngine orchestrates the Ley 73 / Modalidad 40 calculations
type PensionEngine struct {
	Params domain.Parameters
	Clock  Clock
	Logger Logger
}

// NewPensionEngine creates a new pension engine using the wall clock
func NewPensionEngine(params domain.Parameters) *PensionEngine {
	return &PensionEngine{
		Params: params,
		Clock:  time.Now,
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (e *PensionEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *PensionEngine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Now returns the engine clock reading
func (e *PensionEngine) Now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

// Analyze reads the clock once and derives every output for the profile
func (e *PensionEngine) Analyze(p domain.Profile) *domain.Analysis {
	return e.AnalyzeAt(p, e.Now())
}

// AnalyzeAt derives every output for the profile as of now
func (e *PensionEngine) AnalyzeAt(p domain.Profile, now time.Time) *domain.Analysis {
	now = dateutil.Truncate(now)
	return &domain.Analysis{
		GeneratedAt: now,
		Profile:     p,
		Parameters:  e.Params,
		Result:      e.Calculate(p, now),
		Projection:  e.Project(p, now),
		Comparison:  e.CompareAges(p, now),
	}
}

// SalaryBase returns the monthly salary base registered for the profile
func (e *PensionEngine) SalaryBase(p domain.Profile) decimal.Decimal {
	return MonthlySalaryBase(e.Params.UMA, p.SalaryUMA, e.Params.DaysPerMonth)
}

// estimate is the pension outcome of retiring at one age
type estimate struct {
	weeks   int
	percent decimal.Decimal
	factor  decimal.Decimal
	pension decimal.Decimal
}

func (e *PensionEngine) estimateAt(p domain.Profile, base decimal.Decimal, currentAge, age int) estimate {
	weeks := ProjectedWeeks(p.ContributionWeeks, age-currentAge)
	return estimate{
		weeks:   weeks,
		percent: ReplacementPercentFromWeeks(weeks),
		factor:  AgeFactor(age),
		pension: MonthlyPension(base, weeks, age),
	}
}

// Calculate produces the detailed result for the profile's retirement age
func (e *PensionEngine) Calculate(p domain.Profile, now time.Time) domain.PensionResult {
	currentAge := dateutil.Age(p.BirthDate, now)
	yearsUntil := p.RetirementAge - currentAge
	base := e.SalaryBase(p)
	est := e.estimateAt(p, base, currentAge, p.RetirementAge)

	plan := PlanVoluntaryContributions(now.Year(), yearsUntil, e.Params.MaxVoluntaryYears, base, e.Params.RateTable)

	result := domain.PensionResult{
		CurrentAge:           currentAge,
		RetirementAge:        p.RetirementAge,
		YearsUntilRetirement: yearsUntil,
		WeeksAtRetirement:    est.weeks,
		JubilationDate:       dateutil.JubilationDate(p.BirthDate, p.RetirementAge),
		Milestones:           e.milestones(p),
		DailySalary:          DailySalary(e.Params.UMA, p.SalaryUMA),
		MonthlySalaryBase:    base,
		ReplacementPercent:   est.percent,
		AgeFactor:            est.factor,
		EffectiveReplacement: est.percent.Mul(est.factor),
		MonthlyPension:       est.pension,
		VoluntaryPlan:        plan,
		Recovery:             RecoveryPeriod(plan.TotalCost, est.pension),
	}

	e.logger().Debugf("retirement at %d: %d weeks, %s%% x %s = %s/month, modalidad 40 %d-%d costs %s",
		p.RetirementAge, est.weeks, est.percent.String(), est.factor.String(), est.pension.StringFixed(2),
		plan.StartYear, plan.StartYear+plan.Years-1, plan.TotalCost.StringFixed(2))

	return result
}

func (e *PensionEngine) milestones(p domain.Profile) []domain.Milestone {
	out := make([]domain.Milestone, 0, len(e.Params.Milestones))
	for _, target := range e.Params.Milestones {
		m := domain.Milestone{Weeks: target}
		if dateutil.HasReached(p.ContributionWeeks, target) {
			m.Reached = true
		} else {
			d := dateutil.DateReachingWeekCount(p.LastContributionDate, p.ContributionWeeks, target)
			m.Date = &d
		}
		out = append(out, m)
	}
	return out
}

// Project sweeps every age of the projection range holding the profile fixed
func (e *PensionEngine) Project(p domain.Profile, now time.Time) []domain.ProjectionPoint {
	currentAge := dateutil.Age(p.BirthDate, now)
	base := e.SalaryBase(p)

	ages := e.Params.ProjectionAges.Ages()
	points := make([]domain.ProjectionPoint, 0, len(ages))
	for _, age := range ages {
		est := e.estimateAt(p, base, currentAge, age)
		points = append(points, domain.ProjectionPoint{
			Age:            age,
			MonthlyPension: est.pension.Round(0),
			Weeks:          est.weeks,
		})
	}
	return points
}

// CompareAges builds the comparison table against retiring at the normal age.
// IsOptimal marks the normal retirement age by policy, whatever the numbers say.
func (e *PensionEngine) CompareAges(p domain.Profile, now time.Time) []domain.ComparisonRow {
	currentAge := dateutil.Age(p.BirthDate, now)
	base := e.SalaryBase(p)
	normalAge := e.Params.NormalRetirementAge

	reference := e.estimateAt(p, base, currentAge, normalAge)
	pensionNormal := base.Mul(reference.percent).Mul(fullAgeFactor).Div(hundred)
	horizonMonths := decimal.NewFromInt(int64(e.Params.BenefitHorizonYears * monthsPerYear))

	rows := make([]domain.ComparisonRow, 0, len(e.Params.ComparisonAges))
	for _, age := range e.Params.ComparisonAges {
		est := e.estimateAt(p, base, currentAge, age)

		// Retiring early forfeits nothing; only deferral past the normal age accrues foregone pension.
		deferredYears := decimal.NewFromInt(int64(max(0, age-normalAge)))
		foregone := pensionNormal.Mul(twelve).Mul(deferredYears)
		difference := est.pension.Sub(pensionNormal)

		recovery := domain.Recovery{Months: decimal.Zero, Years: decimal.Zero}
		if difference.IsPositive() && foregone.IsPositive() {
			recovery = RecoveryPeriod(foregone, difference)
		}

		cumulative := est.pension.Mul(horizonMonths)
		if age > normalAge {
			cumulative = cumulative.Sub(foregone)
		}

		rows = append(rows, domain.ComparisonRow{
			Age:                age,
			JubilationDate:     dateutil.JubilationDate(p.BirthDate, age),
			Weeks:              est.weeks,
			ReplacementPercent: est.percent,
			AgeFactor:          est.factor,
			MonthlyPension:     est.pension,
			TotalForegone:      foregone,
			MonthlyDifference:  difference,
			Recovery:           recovery,
			CumulativeBenefit:  cumulative,
			IsOptimal:          age == normalAge,
		})
	}
	return rows
}

// PensionAt returns the monthly pension the profile earns retiring at age
func (e *PensionEngine) PensionAt(p domain.Profile, now time.Time, age int) decimal.Decimal {
	currentAge := dateutil.Age(p.BirthDate, now)
	return e.estimateAt(p, e.SalaryBase(p), currentAge, age).pension
}

package compare

import (
	"fmt"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string           `json:"scenarioName"`
	Description  string           `json:"description"`
	Analysis     *domain.Analysis `json:"-"`

	// Scenario specifics
	RetirementAge     int             `json:"retirementAge"`
	SalaryUMA         decimal.Decimal `json:"salaryUMA"`
	WeeksAtRetirement int             `json:"weeksAtRetirement"`

	// Key metrics
	MonthlyPension     decimal.Decimal `json:"monthlyPension"`
	VoluntaryCost      decimal.Decimal `json:"voluntaryCost"`
	AverageMonthlyCost decimal.Decimal `json:"averageMonthlyCost"`
	RecoveryYears      decimal.Decimal `json:"recoveryYears"`
	RecoveryApplicable bool            `json:"recoveryApplicable"`
	HorizonPension     decimal.Decimal `json:"horizonPension"` // Pension received over the benefit horizon
	NetBenefit         decimal.Decimal `json:"netBenefit"`     // Horizon pension minus the voluntary cost

	// Comparison to base
	PensionDiffFromBase    decimal.Decimal `json:"pensionDiffFromBase"`
	PensionPctFromBase     decimal.Decimal `json:"pensionPctFromBase"`
	CostDiffFromBase       decimal.Decimal `json:"costDiffFromBase"`
	NetBenefitDiffFromBase decimal.Decimal `json:"netBenefitDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from analyses
type MetricsCalculator struct {
	HorizonYears int
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator(horizonYears int) *MetricsCalculator {
	return &MetricsCalculator{HorizonYears: horizonYears}
}

// CalculateMetrics computes all comparison metrics for an analysis
func (mc *MetricsCalculator) CalculateMetrics(name string, analysis *domain.Analysis) ComparisonResult {
	r := analysis.Result
	horizon := r.MonthlyPension.Mul(decimal.NewFromInt(int64(mc.HorizonYears * 12)))

	return ComparisonResult{
		ScenarioName:       name,
		Analysis:           analysis,
		RetirementAge:      r.RetirementAge,
		SalaryUMA:          analysis.Profile.SalaryUMA,
		WeeksAtRetirement:  r.WeeksAtRetirement,
		MonthlyPension:     r.MonthlyPension,
		VoluntaryCost:      r.VoluntaryPlan.TotalCost,
		AverageMonthlyCost: r.VoluntaryPlan.AverageMonthlyCost,
		RecoveryYears:      r.Recovery.Years,
		RecoveryApplicable: r.Recovery.Applicable,
		HorizonPension:     horizon,
		NetBenefit:         horizon.Sub(r.VoluntaryPlan.TotalCost),
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.PensionDiffFromBase = scenario.MonthlyPension.Sub(base.MonthlyPension)

	if !base.MonthlyPension.IsZero() {
		scenario.PensionPctFromBase = scenario.PensionDiffFromBase.
			Div(base.MonthlyPension).
			Mul(decimal.NewFromInt(100))
	}

	scenario.CostDiffFromBase = scenario.VoluntaryCost.Sub(base.VoluntaryCost)
	scenario.NetBenefitDiffFromBase = scenario.NetBenefit.Sub(base.NetBenefit)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	bestPension := base
	bestNet := base
	lowestCost := base
	fastestRecovery := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyPension.GreaterThan(bestPension.MonthlyPension) {
			bestPension = alt
		}
		if alt.NetBenefit.GreaterThan(bestNet.NetBenefit) {
			bestNet = alt
		}
		if alt.VoluntaryCost.LessThan(lowestCost.VoluntaryCost) {
			lowestCost = alt
		}
		if alt.RecoveryApplicable && (!fastestRecovery.RecoveryApplicable || alt.RecoveryYears.LessThan(fastestRecovery.RecoveryYears)) {
			fastestRecovery = alt
		}
	}

	if bestPension != base {
		diff := bestPension.MonthlyPension.Sub(base.MonthlyPension)
		recommendations = append(recommendations,
			"Highest Pension: "+bestPension.ScenarioName+" pays $"+diff.StringFixed(2)+
				" more per month than the base scenario")
	}

	if bestNet != base {
		diff := bestNet.NetBenefit.Sub(base.NetBenefit)
		recommendations = append(recommendations,
			"Best Net Benefit: "+bestNet.ScenarioName+" adds $"+diff.StringFixed(0)+
				" over the benefit horizon after Modalidad 40 costs")
	}

	if lowestCost != base {
		savings := base.VoluntaryCost.Sub(lowestCost.VoluntaryCost)
		recommendations = append(recommendations,
			"Lowest Cost: "+lowestCost.ScenarioName+" saves $"+savings.StringFixed(0)+
				" in voluntary contributions")
	}

	if fastestRecovery != base && fastestRecovery.RecoveryApplicable {
		recommendations = append(recommendations,
			"Fastest Recovery: "+fastestRecovery.ScenarioName+" recovers its contributions in "+
				fmt.Sprintf("%s years", fastestRecovery.RecoveryYears.StringFixed(1)))
	}

	return recommendations
}

package breakeven

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// MultiDimensionalResult collects every successful optimization of one profile
type MultiDimensionalResult struct {
	Results          []OptimizationResult `json:"results"`
	BestByPension    *OptimizationResult  `json:"best_by_pension,omitempty"`
	BestByCumulative *OptimizationResult  `json:"best_by_cumulative,omitempty"`
	LowestCost       *OptimizationResult  `json:"lowest_cost,omitempty"`
	Recommendations  []string             `json:"recommendations"`
}

// OptimizeMultiDimensional runs every target that the constraints allow and
// ranks the successful results. Salary and age matching need a target pension;
// the cumulative sweep always runs.
func (s *Solver) OptimizeMultiDimensional(
	ctx context.Context,
	profile domain.Profile,
	now time.Time,
	constraints Constraints,
) (*MultiDimensionalResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	var requests []OptimizationRequest
	if constraints.TargetPension != nil {
		requests = append(requests,
			OptimizationRequest{Target: OptimizeSalary, Goal: GoalMatchPension},
			OptimizationRequest{Target: OptimizeRetirementAge, Goal: GoalMatchPension},
		)
	}
	requests = append(requests, OptimizationRequest{Target: OptimizeCumulative, Goal: GoalMaximizeCumulative})

	var results []OptimizationResult
	for _, req := range requests {
		req.Profile = profile
		req.Now = now
		req.Constraints = constraints

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if l := s.CalcEngine.Logger; l != nil {
				l.Warnf("optimize %s skipped: %v", req.Target, err)
			}
			continue
		}
		if result.Success {
			results = append(results, *result)
		}
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_multi_dimensional",
			Message:   "no successful optimizations found",
		}
	}

	md := &MultiDimensionalResult{Results: results}
	for i := range results {
		r := &results[i]
		if md.BestByPension == nil || r.MonthlyPension.GreaterThan(md.BestByPension.MonthlyPension) {
			md.BestByPension = r
		}
		if md.BestByCumulative == nil || r.CumulativeBenefit.GreaterThan(md.BestByCumulative.CumulativeBenefit) {
			md.BestByCumulative = r
		}
		if md.LowestCost == nil || r.VoluntaryCost.LessThan(md.LowestCost.VoluntaryCost) {
			md.LowestCost = r
		}
	}
	md.Recommendations = multiDimensionalRecommendations(md)

	return md, nil
}

func describe(r *OptimizationResult) string {
	desc := fmt.Sprintf("optimize %s", r.Target)
	if r.OptimalSalaryUMA != nil {
		desc += fmt.Sprintf(" (%s UMA", r.OptimalSalaryUMA.StringFixed(2))
		if r.OptimalRetirementAge != nil {
			desc += fmt.Sprintf(", retire at %d", *r.OptimalRetirementAge)
		}
		desc += ")"
	}
	return desc
}

func multiDimensionalRecommendations(md *MultiDimensionalResult) []string {
	var recommendations []string

	if md.BestByPension != nil {
		recommendations = append(recommendations, fmt.Sprintf("Highest monthly pension ($%s): %s",
			md.BestByPension.MonthlyPension.StringFixed(2), describe(md.BestByPension)))
	}
	if md.BestByCumulative != nil {
		recommendations = append(recommendations, fmt.Sprintf("Highest cumulative benefit ($%s): %s",
			md.BestByCumulative.CumulativeBenefit.StringFixed(0), describe(md.BestByCumulative)))
	}
	if md.LowestCost != nil {
		recommendations = append(recommendations, fmt.Sprintf("Lowest Modalidad 40 cost ($%s): %s",
			md.LowestCost.VoluntaryCost.StringFixed(0), describe(md.LowestCost)))
	}

	if md.BestByPension != nil && md.BestByPension == md.BestByCumulative {
		recommendations = append(recommendations,
			fmt.Sprintf("Optimizing %s gives both the highest pension and the highest cumulative benefit",
				md.BestByPension.Target))
	}

	return recommendations
}

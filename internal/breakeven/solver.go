package breakeven

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/transform"
	"github.com/shopspring/decimal"
)

// Solver searches salary and retirement age for break-even points
type Solver struct {
	CalcEngine *calculation.PensionEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.PensionEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.PensionEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	req.Constraints = s.withDefaultBounds(req.Constraints)
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	if req.Now.IsZero() {
		req.Now = s.CalcEngine.Now()
	}
	if req.Goal == "" {
		req.Goal = GoalMatchPension
		if req.Target == OptimizeCumulative {
			req.Goal = GoalMaximizeCumulative
		}
	}

	if req.Goal == GoalMatchPension && req.Target != OptimizeCumulative && req.Constraints.TargetPension == nil {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("target %s with goal %s requires a target pension", req.Target, req.Goal),
		}
	}

	switch req.Target {
	case OptimizeSalary:
		if req.Goal != GoalMatchPension {
			return nil, &BreakEvenError{
				Operation: "optimize",
				Message:   fmt.Sprintf("goal %s is not supported for target %s", req.Goal, req.Target),
			}
		}
		return s.optimizeSalary(ctx, req)
	case OptimizeRetirementAge:
		if req.Goal == GoalMaximizeCumulative {
			return s.optimizeCumulative(ctx, req)
		}
		return s.optimizeRetirementAge(ctx, req)
	case OptimizeCumulative:
		return s.optimizeCumulative(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
}

func (s *Solver) withDefaultBounds(c Constraints) Constraints {
	defaults := DefaultConstraints(s.CalcEngine.Params)
	if c.MinSalaryUMA == nil {
		c.MinSalaryUMA = defaults.MinSalaryUMA
	}
	if c.MaxSalaryUMA == nil {
		c.MaxSalaryUMA = defaults.MaxSalaryUMA
	}
	if c.MinRetirementAge == nil {
		c.MinRetirementAge = defaults.MinRetirementAge
	}
	if c.MaxRetirementAge == nil {
		c.MaxRetirementAge = defaults.MaxRetirementAge
	}
	return c
}

// optimizeSalary finds the lowest registered salary whose pension reaches
// the target at the profile's retirement age. The pension grows with salary,
// so a bisection keeping hi on the reaching side converges on it.
func (s *Solver) optimizeSalary(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	lo := *req.Constraints.MinSalaryUMA
	hi := *req.Constraints.MaxSalaryUMA
	target := *req.Constraints.TargetPension

	pensionFor := func(salary decimal.Decimal) (decimal.Decimal, error) {
		p, err := transform.ApplyTransforms(req.Profile, []transform.ProfileTransform{
			&transform.SetSalaryUMA{SalaryUMA: salary},
		})
		if err != nil {
			return decimal.Zero, &BreakEvenError{
				Operation: "optimize_salary",
				Message:   "failed to apply salary transform",
				Cause:     err,
			}
		}
		return s.CalcEngine.PensionAt(p, req.Now, p.RetirementAge), nil
	}

	maxPension, err := pensionFor(hi)
	if err != nil {
		return nil, err
	}
	if maxPension.LessThan(target) {
		result, err := s.evaluateResult(req, req.Profile.RetirementAge, hi, 1)
		if err != nil {
			return nil, err
		}
		result.ConvergenceInfo = fmt.Sprintf("Target pension $%s is above the %s UMA maximum of $%s",
			target.StringFixed(2), hi.String(), maxPension.StringFixed(2))
		return result, nil
	}

	two := decimal.NewFromInt(2)
	iterations := 1
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		pension, err := pensionFor(mid)
		if err != nil {
			return nil, err
		}
		if pension.LessThan(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	result, err := s.evaluateResult(req, req.Profile.RetirementAge, hi, iterations)
	if err != nil {
		return nil, err
	}
	if hi.Sub(lo).GreaterThan(req.Tolerance) {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
		return result, nil
	}
	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("Converged within %s UMA", req.Tolerance.String())
	return result, nil
}

// optimizeRetirementAge finds the earliest age whose pension reaches the target
func (s *Solver) optimizeRetirementAge(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	minAge := *req.Constraints.MinRetirementAge
	maxAge := *req.Constraints.MaxRetirementAge
	target := *req.Constraints.TargetPension

	iterations := 0
	for age := minAge; age <= maxAge && iterations < req.MaxIterations; age++ {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.CalcEngine.PensionAt(req.Profile, req.Now, age).LessThan(target) {
			continue
		}

		result, err := s.evaluateResult(req, age, req.Profile.SalaryUMA, iterations)
		if err != nil {
			return nil, err
		}
		result.Success = true
		result.ConvergenceInfo = fmt.Sprintf("Evaluated %d retirement ages", iterations)
		return result, nil
	}

	result, err := s.evaluateResult(req, maxAge, req.Profile.SalaryUMA, iterations)
	if err != nil {
		return nil, err
	}
	result.ConvergenceInfo = fmt.Sprintf("No age between %d and %d reaches $%s", minAge, maxAge, target.StringFixed(2))
	return result, nil
}

// optimizeCumulative finds the age with the greatest benefit-horizon total
func (s *Solver) optimizeCumulative(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	minAge := *req.Constraints.MinRetirementAge
	maxAge := *req.Constraints.MaxRetirementAge
	rows := s.sweepEngine(minAge, maxAge).CompareAges(req.Profile, req.Now)

	var best *domain.ComparisonRow
	iterations := 0
	for i := range rows {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if best == nil || rows[i].CumulativeBenefit.GreaterThan(best.CumulativeBenefit) {
			best = &rows[i]
		}
	}

	if best == nil {
		return nil, &BreakEvenError{
			Operation: "optimize_cumulative",
			Message:   fmt.Sprintf("no retirement ages between %d and %d", minAge, maxAge),
		}
	}

	result, err := s.evaluateResult(req, best.Age, req.Profile.SalaryUMA, iterations)
	if err != nil {
		return nil, err
	}
	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("Evaluated %d retirement ages", iterations)
	return result, nil
}

// sweepEngine copies the engine with comparison ages covering [minAge, maxAge]
func (s *Solver) sweepEngine(minAge, maxAge int) *calculation.PensionEngine {
	sweep := *s.CalcEngine
	sweep.Params = s.CalcEngine.Params.Clone()
	sweep.Params.ComparisonAges = domain.AgeRange{Min: minAge, Max: maxAge}.Ages()
	return &sweep
}

// evaluateResult analyzes the profile at the given age and salary
func (s *Solver) evaluateResult(req OptimizationRequest, age int, salary decimal.Decimal, iterations int) (*OptimizationResult, error) {
	p, err := transform.ApplyTransforms(req.Profile, []transform.ProfileTransform{
		&transform.SetRetirementAge{Age: age},
		&transform.SetSalaryUMA{SalaryUMA: salary},
	})
	if err != nil {
		return nil, &BreakEvenError{
			Operation: "evaluate",
			Message:   "failed to apply transforms",
			Cause:     err,
		}
	}

	analysis := s.CalcEngine.AnalyzeAt(p, req.Now)
	basePension := s.CalcEngine.PensionAt(req.Profile, req.Now, req.Profile.RetirementAge)

	salaryCopy := salary
	ageCopy := age
	result := &OptimizationResult{
		Request:              req,
		Target:               req.Target,
		Goal:                 req.Goal,
		Iterations:           iterations,
		OptimalSalaryUMA:     &salaryCopy,
		OptimalRetirementAge: &ageCopy,
		Analysis:             analysis,
		MonthlyPension:       analysis.Result.MonthlyPension,
		VoluntaryCost:        analysis.Result.VoluntaryPlan.TotalCost,
		CumulativeBenefit:    s.cumulativeAt(p, req.Now, age),
		PolicyOptimalAge:     s.CalcEngine.Params.NormalRetirementAge,
		BaseMonthlyPension:   basePension,
		PensionDiffFromBase:  analysis.Result.MonthlyPension.Sub(basePension),
	}
	return result, nil
}

func (s *Solver) cumulativeAt(p domain.Profile, now time.Time, age int) decimal.Decimal {
	rows := s.sweepEngine(age, age).CompareAges(p, now)
	if len(rows) == 0 {
		return decimal.Zero
	}
	return rows[0].CumulativeBenefit
}

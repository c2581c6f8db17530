package breakeven

import (
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what parameter to optimize
type OptimizationTarget string

const (
	OptimizeSalary        OptimizationTarget = "salary"     // Minimum Modalidad 40 salary reaching a target pension
	OptimizeRetirementAge OptimizationTarget = "age"        // Earliest retirement age reaching a target pension
	OptimizeCumulative    OptimizationTarget = "cumulative" // Age with the greatest cumulative benefit
)

// OptimizationGoal defines what outcome to achieve
type OptimizationGoal string

const (
	GoalMatchPension       OptimizationGoal = "match_pension"       // Reach a target monthly pension
	GoalMaximizeCumulative OptimizationGoal = "maximize_cumulative" // Maximize the benefit-horizon total
)

// Constraints define bounds for optimization parameters
type Constraints struct {
	MinSalaryUMA *decimal.Decimal `json:"min_salary_uma,omitempty"`
	MaxSalaryUMA *decimal.Decimal `json:"max_salary_uma,omitempty"`

	MinRetirementAge *int `json:"min_retirement_age,omitempty"`
	MaxRetirementAge *int `json:"max_retirement_age,omitempty"`

	// Monthly pension for the match_pension goal
	TargetPension *decimal.Decimal `json:"target_pension,omitempty"`
}

// DefaultConstraints returns the registrable salary and age bounds of params
func DefaultConstraints(params domain.Parameters) Constraints {
	minSalary := params.SalaryUMABounds.Min
	maxSalary := params.SalaryUMABounds.Max
	minAge := params.RetirementAges.Min
	maxAge := params.RetirementAges.Max

	return Constraints{
		MinSalaryUMA:     &minSalary,
		MaxSalaryUMA:     &maxSalary,
		MinRetirementAge: &minAge,
		MaxRetirementAge: &maxAge,
	}
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	Profile       domain.Profile
	Now           time.Time
	Target        OptimizationTarget
	Goal          OptimizationGoal
	Constraints   Constraints
	MaxIterations int             // Maximum solver iterations
	Tolerance     decimal.Decimal // Convergence tolerance for the salary search, in UMAs
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"-"`
	Target          OptimizationTarget  `json:"target"`
	Goal            OptimizationGoal    `json:"goal"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	// Optimized parameters
	OptimalSalaryUMA     *decimal.Decimal `json:"optimal_salary_uma,omitempty"`
	OptimalRetirementAge *int             `json:"optimal_retirement_age,omitempty"`

	// Results at optimal parameters
	Analysis          *domain.Analysis `json:"-"`
	MonthlyPension    decimal.Decimal  `json:"monthly_pension"`
	VoluntaryCost     decimal.Decimal  `json:"voluntary_cost"`
	CumulativeBenefit decimal.Decimal  `json:"cumulative_benefit"`

	// The age flagged optimal by policy, reported alongside the numeric result
	PolicyOptimalAge int `json:"policy_optimal_age"`

	// Comparison to the unmodified profile
	BaseMonthlyPension  decimal.Decimal `json:"base_monthly_pension"`
	PensionDiffFromBase decimal.Decimal `json:"pension_diff_from_base"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance, in UMAs
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.01"), // one hundredth of an UMA
		MaxIterations: 50,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinSalaryUMA != nil && c.MaxSalaryUMA != nil {
		if c.MinSalaryUMA.GreaterThan(*c.MaxSalaryUMA) {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   "min_salary_uma cannot be greater than max_salary_uma",
			}
		}
	}
	if c.MinSalaryUMA != nil && !c.MinSalaryUMA.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_salary_uma must be positive",
		}
	}

	if c.MinRetirementAge != nil && c.MaxRetirementAge != nil {
		if *c.MinRetirementAge > *c.MaxRetirementAge {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   "min_retirement_age cannot be greater than max_retirement_age",
			}
		}
	}

	if c.TargetPension != nil && !c.TargetPension.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "target_pension must be positive",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}

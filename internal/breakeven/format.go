package breakeven

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Optimization Target: %s\n", result.Target))
	sb.WriteString(fmt.Sprintf("Optimization Goal:   %s\n", result.Goal))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("OPTIMAL PARAMETERS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if result.OptimalSalaryUMA != nil {
		sb.WriteString(fmt.Sprintf("Modalidad 40 Salary: %s UMA\n", result.OptimalSalaryUMA.StringFixed(2)))
	}
	if result.OptimalRetirementAge != nil {
		sb.WriteString(fmt.Sprintf("Retirement Age:      %d\n", *result.OptimalRetirementAge))
	}
	sb.WriteString(fmt.Sprintf("Policy Optimal Age:  %d\n", result.PolicyOptimalAge))
	sb.WriteString("\n")

	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly Pension:     $%s\n", tf.formatCurrency(result.MonthlyPension)))
	sb.WriteString(fmt.Sprintf("Modalidad 40 Cost:   $%s\n", tf.formatCurrency(result.VoluntaryCost)))
	sb.WriteString(fmt.Sprintf("Cumulative Benefit:  $%s\n", tf.formatCurrency(result.CumulativeBenefit)))
	sb.WriteString("\n")

	if !result.PensionDiffFromBase.IsZero() {
		sb.WriteString("COMPARISON TO BASE PROFILE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Base Pension:        $%s\n", tf.formatCurrency(result.BaseMonthlyPension)))
		sb.WriteString(fmt.Sprintf("Pension Change:      %s$%s\n",
			tf.deltaSymbol(result.PensionDiffFromBase), tf.formatCurrency(result.PensionDiffFromBase.Abs())))
		sb.WriteString("\n")
	}

	if result.Goal == GoalMatchPension && result.Request.Constraints.TargetPension != nil {
		target := *result.Request.Constraints.TargetPension
		sb.WriteString("TARGET PENSION MATCH\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Target Pension:   $%s\n", tf.formatCurrency(target)))
		sb.WriteString(fmt.Sprintf("Achieved Pension: $%s\n", tf.formatCurrency(result.MonthlyPension)))
		diff := result.MonthlyPension.Sub(target)
		sb.WriteString(fmt.Sprintf("Difference:       %s$%s\n", tf.deltaSymbol(diff), tf.formatCurrency(diff.Abs())))
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// FormatMulti generates a summary table for a multi-dimensional run
func (tf *TableFormatter) FormatMulti(md *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("MULTI-TARGET OPTIMIZATION\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-12s %8s %4s %14s %14s %16s\n",
		"Target", "UMA", "Age", "Pension/mo", "M40 Cost", "Cumulative"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, r := range md.Results {
		salary, age := "-", "-"
		if r.OptimalSalaryUMA != nil {
			salary = r.OptimalSalaryUMA.StringFixed(2)
		}
		if r.OptimalRetirementAge != nil {
			age = fmt.Sprintf("%d", *r.OptimalRetirementAge)
		}
		sb.WriteString(fmt.Sprintf("%-12s %8s %4s %14s %14s %16s\n",
			r.Target, salary, age,
			tf.formatCurrency(r.MonthlyPension),
			tf.formatCurrency(r.VoluntaryCost),
			tf.formatCurrency(r.CumulativeBenefit)))
	}
	sb.WriteString("\n")

	if len(md.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range md.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}

	return sb.String()
}

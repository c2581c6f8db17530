package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const tableWidth = 80

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("MODALIDAD 40 SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-18s %4s %6s %12s %12s %9s %12s\n",
		"Scenario", "Age", "UMA", "Pension/mo", "M40 Cost", "Recovery", "Net Benefit"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s: %s\n", alt.ScenarioName, alt.Description))

			sb.WriteString(fmt.Sprintf("  Monthly Pension:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.PensionDiffFromBase),
				alt.PensionDiffFromBase.Abs().StringFixed(2),
				alt.PensionPctFromBase.StringFixed(1)))

			if !alt.CostDiffFromBase.IsZero() {
				// Lower cost is better
				sb.WriteString(fmt.Sprintf("  Modalidad 40:     %s$%s\n",
					tf.deltaSymbol(alt.CostDiffFromBase),
					tf.formatDecimal(alt.CostDiffFromBase.Abs())))
			}

			sb.WriteString(fmt.Sprintf("  Net Benefit:      %s$%s\n",
				tf.deltaSymbol(alt.NetBenefitDiffFromBase),
				tf.formatDecimal(alt.NetBenefitDiffFromBase.Abs())))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	recovery := "n/a"
	if result.RecoveryApplicable {
		recovery = result.RecoveryYears.StringFixed(1) + "y"
	}

	return fmt.Sprintf("%-18s %4d %6s %12s %12s %9s %12s\n",
		tf.truncate(name, 18),
		result.RetirementAge,
		result.SalaryUMA.StringFixed(1),
		"$"+result.MonthlyPension.StringFixed(2),
		"$"+tf.formatDecimal(result.VoluntaryCost),
		recovery,
		"$"+tf.formatDecimal(result.NetBenefit))
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.PensionDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s/mo", alt.PensionDiffFromBase.StringFixed(0))
		} else if alt.PensionDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s/mo", alt.PensionDiffFromBase.Abs().StringFixed(0))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}

package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Retirement Age",
		"Salary UMA",
		"Weeks At Retirement",
		"Monthly Pension",
		"Modalidad 40 Cost",
		"Average Monthly Cost",
		"Recovery Years",
		"Horizon Pension",
		"Net Benefit",
		"Pension Diff from Base",
		"Pension % Change",
		"Cost Diff from Base",
		"Net Benefit Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	recovery := ""
	if result.RecoveryApplicable {
		recovery = result.RecoveryYears.StringFixed(2)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		strconv.Itoa(result.RetirementAge),
		result.SalaryUMA.String(),
		strconv.Itoa(result.WeeksAtRetirement),
		result.MonthlyPension.StringFixed(2),
		result.VoluntaryCost.StringFixed(2),
		result.AverageMonthlyCost.StringFixed(2),
		recovery,
		result.HorizonPension.StringFixed(2),
		result.NetBenefit.StringFixed(2),
		result.PensionDiffFromBase.StringFixed(2),
		result.PensionPctFromBase.StringFixed(2),
		result.CostDiffFromBase.StringFixed(2),
		result.NetBenefitDiffFromBase.StringFixed(2),
	}
}

package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// CSVSummarizer implements the simple comparison CSV output (one row per age).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(analysis *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "JubilationDate", "Weeks", "ReplacementPercent", "AgeFactor", "MonthlyPension",
		"TotalForegone", "MonthlyDifference", "RecoveryYears", "CumulativeBenefit", "IsOptimal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range analysis.Comparison {
		record := []string{
			strconv.Itoa(row.Age),
			row.JubilationDate.Format("2006-01-02"),
			strconv.Itoa(row.Weeks),
			row.ReplacementPercent.StringFixed(3),
			row.AgeFactor.StringFixed(2),
			row.MonthlyPension.StringFixed(2),
			row.TotalForegone.StringFixed(2),
			row.MonthlyDifference.StringFixed(2),
			row.Recovery.Years.StringFixed(2),
			row.CumulativeBenefit.StringFixed(2),
			strconv.FormatBool(row.IsOptimal),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailed writes the contribution breakdown followed by the age projection.
type CSVDetailed struct{}

func (c CSVDetailed) Name() string { return "detailed-csv" }

func (c CSVDetailed) Format(analysis *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	rows := [][]string{{"Section", "Key", "Rate", "MonthlyCost", "AnnualCost"}}
	for _, y := range analysis.Result.VoluntaryPlan.Breakdown {
		rows = append(rows, []string{
			"contribution",
			strconv.Itoa(y.Year),
			y.Rate.StringFixed(3),
			y.MonthlyCost.StringFixed(2),
			y.AnnualCost.StringFixed(2),
		})
	}
	rows = append(rows, []string{"contribution", "total", "", analysis.Result.VoluntaryPlan.AverageMonthlyCost.StringFixed(2),
		analysis.Result.VoluntaryPlan.TotalCost.StringFixed(2)})

	rows = append(rows, []string{"Section", "Age", "Weeks", "MonthlyPension", ""})
	for _, pt := range analysis.Projection {
		rows = append(rows, []string{
			"projection",
			strconv.Itoa(pt.Age),
			strconv.Itoa(pt.Weeks),
			pt.MonthlyPension.String(),
			"",
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	fullFactor = decimal.NewFromInt(1)
	hundredPct = decimal.NewFromInt(100)
)

// ConsoleFormatter renders a short summary of the estimate
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(analysis *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	r := analysis.Result

	fmt.Fprintln(&buf, "PENSION ESTIMATE SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	fmt.Fprintf(&buf, "Retirement Age:   %d (in %d years)\n", r.RetirementAge, r.YearsUntilRetirement)
	fmt.Fprintf(&buf, "Jubilation Date:  %s\n", dateutil.FormatShortDateES(r.JubilationDate))
	fmt.Fprintf(&buf, "Monthly Pension:  %s\n", FormatCurrency(r.MonthlyPension))
	fmt.Fprintf(&buf, "Modalidad 40:     %s total (%s/month)\n",
		FormatCurrency(r.VoluntaryPlan.TotalCost), FormatCurrency(r.VoluntaryPlan.AverageMonthlyCost))
	if r.Recovery.Applicable {
		fmt.Fprintf(&buf, "Recovered After:  %s years of pension\n", r.Recovery.Years.StringFixed(1))
	}
	if row, ok := analysis.OptimalRow(); ok {
		fmt.Fprintf(&buf, "Recommended Age:  %d (%s/month)\n", row.Age, FormatCurrency(row.MonthlyPension))
	}
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter renders the full report
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(analysis *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	r := analysis.Result
	p := analysis.Profile
	params := analysis.Parameters

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "IMSS LEY 73 PENSION ANALYSIS (MODALIDAD 40)")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "Generated: %s\n", dateutil.FormatLongDateES(analysis.GeneratedAt))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintf(&buf, "• UMA %d: %s per day\n", params.UMAYear, FormatCurrency(params.UMA))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROFILE")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	fmt.Fprintf(&buf, "  Birth Date:             %s\n", dateutil.FormatLongDateES(p.BirthDate))
	fmt.Fprintf(&buf, "  Current Age:            %d\n", r.CurrentAge)
	fmt.Fprintf(&buf, "  Contribution Weeks:     %d\n", p.ContributionWeeks)
	fmt.Fprintf(&buf, "  Last Contribution:      %s\n", dateutil.FormatShortDateES(p.LastContributionDate))
	fmt.Fprintf(&buf, "  Registered Salary:      %s UMA (%s per day)\n", p.SalaryUMA.String(), FormatCurrency(r.DailySalary))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CONTRIBUTION MILESTONES")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	for _, m := range r.Milestones {
		if m.Reached || m.Date == nil {
			fmt.Fprintf(&buf, "  %5d weeks:  reached\n", m.Weeks)
			continue
		}
		fmt.Fprintf(&buf, "  %5d weeks:  %s\n", m.Weeks, dateutil.FormatLongDateES(*m.Date))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "RETIREMENT AT %d\n", r.RetirementAge)
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	fmt.Fprintf(&buf, "  Jubilation Date:        %s\n", dateutil.FormatLongDateES(r.JubilationDate))
	fmt.Fprintf(&buf, "  Years Until Retirement: %d\n", r.YearsUntilRetirement)
	fmt.Fprintf(&buf, "  Weeks at Retirement:    %d\n", r.WeeksAtRetirement)
	fmt.Fprintf(&buf, "  Monthly Salary Base:    %s\n", FormatCurrency(r.MonthlySalaryBase))
	fmt.Fprintf(&buf, "  Replacement:            %s x %s = %s\n",
		FormatPercentage(r.ReplacementPercent), r.AgeFactor.StringFixed(2), FormatPercentage(r.EffectiveReplacement))
	fmt.Fprintf(&buf, "  MONTHLY PENSION:        %s\n", FormatCurrency(r.MonthlyPension))
	fmt.Fprintln(&buf)

	plan := r.VoluntaryPlan
	fmt.Fprintln(&buf, "MODALIDAD 40 CONTRIBUTIONS")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	if plan.Years == 0 {
		fmt.Fprintln(&buf, "  No contribution years before retirement")
	} else {
		fmt.Fprintf(&buf, "  %-6s %8s %16s %18s\n", "Year", "Rate", "Monthly", "Annual")
		for _, y := range plan.Breakdown {
			fmt.Fprintf(&buf, "  %-6d %8s %16s %18s\n",
				y.Year, FormatPercentage(y.Rate.Mul(hundredPct)), FormatCurrency(y.MonthlyCost), FormatCurrency(y.AnnualCost))
		}
		fmt.Fprintf(&buf, "  Total (%d-%d):        %s\n", plan.StartYear, plan.StartYear+plan.Years-1, FormatCurrency(plan.TotalCost))
		fmt.Fprintf(&buf, "  Average Monthly:        %s\n", FormatCurrency(plan.AverageMonthlyCost))
	}
	if r.Recovery.Applicable {
		fmt.Fprintf(&buf, "  Recovered After:        %s months (%s years) of pension\n",
			r.Recovery.Months.StringFixed(1), r.Recovery.Years.StringFixed(1))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROJECTION BY RETIREMENT AGE")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	for _, pt := range analysis.Projection {
		fmt.Fprintf(&buf, "  %3d  %6d weeks  %14s\n", pt.Age, pt.Weeks, FormatWholeCurrency(pt.MonthlyPension))
	}
	fmt.Fprintln(&buf)

	writeComparison(&buf, analysis.Comparison)

	return buf.Bytes(), nil
}

func writeComparison(buf *bytes.Buffer, rows []domain.ComparisonRow) {
	fmt.Fprintln(buf, "AGE COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "%-4s %-12s %6s %8s %14s %16s  %s\n",
		"Age", "Date", "Weeks", "Pct", "Pension", "Cumulative", "Verdict")
	for _, row := range rows {
		marker := " "
		if row.IsOptimal {
			marker = "*"
		}
		fmt.Fprintf(buf, "%-3d%s %-12s %6d %8s %14s %16s  %s\n",
			row.Age, marker,
			dateutil.FormatShortDateES(row.JubilationDate),
			row.Weeks,
			FormatPercentage(row.ReplacementPercent.Mul(row.AgeFactor)),
			FormatCurrency(row.MonthlyPension),
			FormatWholeCurrency(row.CumulativeBenefit),
			Verdict(row))
	}
	fmt.Fprintln(buf)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/tui/components"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + SubtitleStyle.Render("Press q to quit"))
	}
	if m.analysis == nil {
		return AppStyle.Render(InfoStyle.Render("Calculating pension estimate..."))
	}

	var pane string
	switch m.view {
	case ViewComparison:
		pane = m.renderComparison()
	default:
		pane = m.renderResults()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		BorderStyle.Render(m.renderSliders()),
		"  ",
		pane,
	)

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		"",
		body,
		"",
		m.help.View(m.keys),
	))
}

// renderTitleBar renders the application title and the active view
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("LEY 73 - Modalidad 40 Pension Estimator")
	crumb := SubtitleStyle.Render(fmt.Sprintf("%s • as of %s", m.view, dateutil.FormatShortDateES(m.analysis.GeneratedAt)))
	return lipgloss.JoinVertical(lipgloss.Left, title, crumb)
}

func (m Model) renderSliders() string {
	parts := make([]string, 0, len(m.sliders))
	for _, s := range m.sliders {
		parts = append(parts, s.Render())
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderResults() string {
	r := m.analysis.Result

	pension := components.NewMetricCard("Monthly Pension", FormatCurrency(r.MonthlyPension))
	if row, ok := m.analysis.OptimalRow(); ok && row.Age != r.RetirementAge {
		diff := r.MonthlyPension.Sub(row.MonthlyPension)
		sign := "+"
		if diff.IsNegative() {
			sign = "-"
		}
		pension.WithTrend(!diff.IsNegative(), fmt.Sprintf("%s%s vs %d", sign, FormatCurrency(diff.Abs()), row.Age))
	}

	cost := components.NewMetricCard("Modalidad 40 Cost", FormatCurrency(r.VoluntaryPlan.TotalCost)).
		WithDescription(fmt.Sprintf("%s/month", FormatCurrency(r.VoluntaryPlan.AverageMonthlyCost)))

	recovery := "n/a"
	if r.Recovery.Applicable {
		recovery = r.Recovery.Years.StringFixed(1) + " years"
	}

	cards := []*components.MetricCard{
		pension,
		components.NewMetricCard("Jubilation Date", dateutil.FormatShortDateES(r.JubilationDate)).
			WithDescription(fmt.Sprintf("in %d years", r.YearsUntilRetirement)),
		components.NewMetricCard("Weeks at Retirement", fmt.Sprintf("%d", r.WeeksAtRetirement)).
			WithDescription(fmt.Sprintf("%s%% x %s", r.ReplacementPercent.StringFixed(3), r.AgeFactor.StringFixed(2))),
		cost,
		components.NewMetricCard("Cost Recovered", recovery),
	}

	chart := components.ProjectionChart(m.analysis.Projection, r.RetirementAge)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		"",
		renderMilestones(r.Milestones),
		"",
		chart.Render(),
	)
}

func renderMilestones(milestones []domain.Milestone) string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Milestones"))
	for _, ms := range milestones {
		sb.WriteString("\n")
		if ms.Reached || ms.Date == nil {
			sb.WriteString(fmt.Sprintf("  %5d weeks  ✓ reached", ms.Weeks))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %5d weeks  %s", ms.Weeks, dateutil.FormatLongDateES(*ms.Date)))
	}
	return sb.String()
}

func (m Model) renderComparison() string {
	note := SubtitleStyle.Render(fmt.Sprintf("* recommended age %d • cumulative over %d years",
		m.engine.Params.NormalRetirementAge, m.engine.Params.BenefitHorizonYears))
	return lipgloss.JoinVertical(lipgloss.Left,
		ActiveBorderStyle.Render(m.comparison.View()),
		note,
	)
}

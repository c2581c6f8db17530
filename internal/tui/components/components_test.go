package components

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ley73/internal/domain"
)

func TestParameterSlider_Clamping(t *testing.T) {
	s := NewParameterSlider("Salary", 30, 1, 25, 0.5).WithBigStep(5)
	assert.Equal(t, 25.0, s.Value, "initial value is clamped")

	assert.False(t, s.Increment())
	assert.True(t, s.Decrement())
	assert.Equal(t, 24.5, s.Value)

	assert.True(t, s.DecrementBig())
	assert.Equal(t, 19.5, s.Value)

	s.SetValue(-3)
	assert.Equal(t, 1.0, s.Value)
	assert.False(t, s.DecrementBig())
	assert.Equal(t, 0.0, s.Percentage())

	assert.True(t, s.IncrementBig())
	assert.InDelta(t, 5.0/24, s.Percentage(), 1e-9)
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Retirement Age", 65, 60, 70, 1).
		WithUnit(" years").
		WithFormat("%.0f").
		WithDescription("Age at which the pension starts")
	assert.Equal(t, "65 years", s.FormattedValue())

	out := s.Render()
	assert.Contains(t, out, "Retirement Age")
	assert.Contains(t, out, "65 years")
	assert.Contains(t, out, "60 years  ─  70 years")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "Age at which the pension starts")

	flat := NewParameterSlider("Fixed", 5, 5, 5, 1)
	assert.Equal(t, 0.0, flat.Percentage())
}

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Monthly Pension", "$69,326.54").
		WithTrend(false, "-$9,136.06 vs 70").
		WithDescription("at 65")
	out := card.Render()
	assert.Contains(t, out, "Monthly Pension")
	assert.Contains(t, out, "$69,326.54")
	assert.Contains(t, out, "-$9,136.06 vs 70")
	assert.Contains(t, out, "at 65")

	assert.Empty(t, MetricGrid(nil, 3))
	grid := MetricGrid([]*MetricCard{card, NewMetricCard("Weeks", "1215")}, 1)
	assert.Contains(t, grid, "1215")
}

func TestProjectionChart(t *testing.T) {
	points := []domain.ProjectionPoint{
		{Age: 64, MonthlyPension: decimal.NewFromInt(60749), Weeks: 1163},
		{Age: 65, MonthlyPension: decimal.NewFromInt(69327), Weeks: 1215},
		{Age: 66, MonthlyPension: decimal.NewFromInt(71154), Weeks: 1267},
	}
	c := ProjectionChart(points, 65)
	require.Len(t, c.Points, 3)
	assert.Equal(t, 1, c.Highlight)
	assert.Equal(t, []string{"64", "65", "66"}, c.Labels)

	out := c.WithSize(4, 2).Render()
	assert.Contains(t, out, "Monthly pension by retirement age")
	assert.Contains(t, out, "$71K")
	assert.Contains(t, out, "█")

	assert.Contains(t, NewASCIIChart("empty").Render(), "No data to display")
	assert.Equal(t, "$1.5M", formatChartValue(1500000))
	assert.Equal(t, "$950", formatChartValue(950))
}

func TestComparisonRows(t *testing.T) {
	rows := []domain.ComparisonRow{
		{
			Age:               65,
			JubilationDate:    time.Date(2038, 10, 7, 0, 0, 0, 0, time.UTC),
			Weeks:             1215,
			MonthlyPension:    decimal.RequireFromString("69326.535"),
			TotalForegone:     decimal.Zero,
			CumulativeBenefit: decimal.RequireFromString("16638368.4"),
			IsOptimal:         true,
		},
	}
	out := ComparisonRows(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "65*", out[0][0])
	assert.Equal(t, "7 oct 2038", out[0][1])
	assert.Equal(t, "1215", out[0][2])
	assert.Equal(t, "$69,326.54", out[0][3])
	assert.Equal(t, "$0", out[0][4])
	assert.Equal(t, "$16,638,368", out[0][5])
	assert.Equal(t, "optimal", out[0][6])

	tbl := NewComparisonTable(rows, 5)
	assert.Len(t, tbl.Rows(), 1)
	assert.Len(t, tbl.Columns(), 7)
}

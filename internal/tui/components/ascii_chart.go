package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/tui/tuistyles"
)

// ASCIIChart renders one value per column as vertical bars
type ASCIIChart struct {
	Title     string
	Points    []float64
	Labels    []string // One per point
	Highlight int      // Index drawn in the accent color; -1 for none
	Height    int
	BarWidth  int
}

// NewASCIIChart creates a new chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:     title,
		Highlight: -1,
		Height:    10,
		BarWidth:  3,
	}
}

// ProjectionChart charts the monthly pension for each projected age,
// highlighting the chosen retirement age.
func ProjectionChart(points []domain.ProjectionPoint, retirementAge int) *ASCIIChart {
	c := NewASCIIChart("Monthly pension by retirement age")
	for i, pt := range points {
		c.Points = append(c.Points, pt.MonthlyPension.InexactFloat64())
		c.Labels = append(c.Labels, fmt.Sprintf("%d", pt.Age))
		if pt.Age == retirementAge {
			c.Highlight = i
		}
	}
	return c
}

// WithSize sets the plot height and bar width
func (c *ASCIIChart) WithSize(height, barWidth int) *ASCIIChart {
	c.Height = height
	c.BarWidth = barWidth
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Points) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		out.WriteString("\n")
	}

	maxVal := 0.0
	for _, v := range c.Points {
		maxVal = math.Max(maxVal, v)
	}

	const yAxisWidth = 8
	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorChartLine)
	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)

	for row := c.Height; row >= 1; row-- {
		label := ""
		if row == c.Height || row == 1 || row == (c.Height+1)/2 {
			label = formatChartValue(maxVal * float64(row) / float64(c.Height))
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │")
		for i, v := range c.Points {
			cell := strings.Repeat(" ", c.BarWidth)
			if c.barHeight(v, maxVal) >= row {
				cell = strings.Repeat("█", c.BarWidth)
			}
			style := barStyle
			if i == c.Highlight {
				style = highlightStyle
			}
			out.WriteString(" ")
			out.WriteString(style.Render(cell))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", len(c.Points)*(c.BarWidth+1)))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(strings.Repeat(" ", yAxisWidth+2))
		for _, l := range c.Labels {
			out.WriteString(" ")
			out.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(c.BarWidth).Render(l))
		}
	}

	return out.String()
}

// barHeight scales v to whole rows of the plot
func (c *ASCIIChart) barHeight(v, maxVal float64) int {
	if maxVal <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / maxVal * float64(c.Height)))
}

// formatChartValue formats a value for display on Y-axis
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/output"
	"github.com/rgehrsitz/ley73/internal/tui/tuistyles"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
)

// ComparisonColumns are the columns of the age comparison table
func ComparisonColumns() []table.Column {
	return []table.Column{
		{Title: "Age", Width: 4},
		{Title: "Date", Width: 12},
		{Title: "Weeks", Width: 6},
		{Title: "Pension", Width: 13},
		{Title: "Foregone", Width: 14},
		{Title: "Cumulative", Width: 14},
		{Title: "Verdict", Width: 22},
	}
}

// ComparisonRows converts comparison rows into table rows. The optimal age is starred.
func ComparisonRows(rows []domain.ComparisonRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		age := strconv.Itoa(r.Age)
		if r.IsOptimal {
			age += "*"
		}
		out = append(out, table.Row{
			age,
			dateutil.FormatShortDateES(r.JubilationDate),
			strconv.Itoa(r.Weeks),
			output.FormatCurrency(r.MonthlyPension),
			output.FormatWholeCurrency(r.TotalForegone),
			output.FormatWholeCurrency(r.CumulativeBenefit),
			output.Verdict(r),
		})
	}
	return out
}

// NewComparisonTable builds a focused bubbles table for the comparison rows
func NewComparisonTable(rows []domain.ComparisonRow, height int) table.Model {
	t := table.New(
		table.WithColumns(ComparisonColumns()),
		table.WithRows(ComparisonRows(rows)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = tuistyles.TableHeaderStyle
	styles.Cell = tuistyles.TableCellStyle
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)

	return t
}

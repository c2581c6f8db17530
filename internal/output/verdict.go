package output

import (
	"fmt"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// Verdict summarizes a comparison row for display
func Verdict(row domain.ComparisonRow) string {
	switch {
	case row.IsOptimal:
		return "optimal"
	case row.AgeFactor.LessThan(fullFactor):
		return fmt.Sprintf("age discount %s%%", hundredPct.Sub(row.AgeFactor.Mul(hundredPct)).StringFixed(0))
	case row.Recovery.Applicable:
		return fmt.Sprintf("recover in %s years", row.Recovery.Years.StringFixed(1))
	case row.TotalForegone.IsPositive():
		return "never recovers"
	default:
		return ""
	}
}

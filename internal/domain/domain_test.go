package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rates() RateTable {
	return RateTable{
		2025: decimal.RequireFromString("0.13347"),
		2026: decimal.RequireFromString("0.14438"),
		2028: decimal.RequireFromString("0.16620"),
		2030: decimal.RequireFromString("0.18800"),
	}
}

func TestRateTable_Rate(t *testing.T) {
	table := rates()

	tests := []struct {
		name     string
		year     int
		expected string
	}{
		{"exact first", 2025, "0.13347"},
		{"exact last", 2030, "0.188"},
		{"gap uses latest rate", 2027, "0.188"},
		{"gap before last", 2029, "0.188"},
		{"beyond range continues flat", 2037, "0.188"},
		{"before range uses last rate", 2020, "0.188"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(table.Rate(tt.year)),
				"year %d: got %s", tt.year, table.Rate(tt.year))
		})
	}

	assert.True(t, RateTable{}.Rate(2025).IsZero())
	assert.Equal(t, []int{2025, 2026, 2028, 2030}, table.Years())
}

func TestAgeRange(t *testing.T) {
	r := AgeRange{Min: 60, Max: 70}
	ages := r.Ages()
	assert.Len(t, ages, 11)
	assert.Equal(t, 60, ages[0])
	assert.Equal(t, 70, ages[10])
	assert.True(t, r.Contains(65))
	assert.False(t, r.Contains(71))
	assert.Nil(t, AgeRange{Min: 5, Max: 1}.Ages())
}

func TestSalaryBounds_Contains(t *testing.T) {
	b := SalaryBounds{Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(25)}
	assert.True(t, b.Contains(decimal.NewFromInt(1)))
	assert.True(t, b.Contains(decimal.NewFromFloat(12.5)))
	assert.True(t, b.Contains(decimal.NewFromInt(25)))
	assert.False(t, b.Contains(decimal.NewFromFloat(25.01)))
	assert.False(t, b.Contains(decimal.Zero))
}

func TestProfile_Age(t *testing.T) {
	p := Profile{BirthDate: time.Date(1973, 10, 7, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 52, p.Age(time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 51, p.Age(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 67, p.WithRetirementAge(67).RetirementAge)
	assert.Equal(t, 0, p.RetirementAge)
}

func TestParameters_Clone(t *testing.T) {
	p := Parameters{RateTable: rates(), ComparisonAges: []int{60, 65}, Milestones: []int{1000}}
	c := p.Clone()
	c.RateTable[2040] = decimal.NewFromInt(1)
	c.ComparisonAges[0] = 61
	c.Milestones[0] = 1

	_, leaked := p.RateTable[2040]
	assert.False(t, leaked)
	assert.Equal(t, 60, p.ComparisonAges[0])
	assert.Equal(t, 1000, p.Milestones[0])
}

func TestAnalysis_OptimalRow(t *testing.T) {
	a := &Analysis{Comparison: []ComparisonRow{{Age: 64}, {Age: 65, IsOptimal: true}, {Age: 67}}}
	row, ok := a.OptimalRow()
	assert.True(t, ok)
	assert.Equal(t, 65, row.Age)

	_, ok = (&Analysis{}).OptimalRow()
	assert.False(t, ok)
}

package domain

import "github.com/shopspring/decimal"

// DefaultParameters returns the 2025 edition of the regulatory parameters
func DefaultParameters() Parameters {
	return Parameters{
		UMA:                 decimal.RequireFromString("113.14"),
		UMAYear:             2025,
		DaysPerMonth:        decimal.RequireFromString("30.4"),
		RateTable:           DefaultRateTable(),
		ComparisonAges:      []int{60, 62, 63, 64, 65, 67, 70},
		ProjectionAges:      AgeRange{Min: 60, Max: 70},
		Milestones:          []int{1000, 1250, 1500},
		NormalRetirementAge: 65,
		BenefitHorizonYears: 20,
		MaxVoluntaryYears:   5,
		SalaryUMABounds: SalaryBounds{
			Min: decimal.NewFromInt(1),
			Max: decimal.NewFromInt(25),
		},
		RetirementAges: AgeRange{Min: 60, Max: 70},
	}
}

// DefaultRateTable returns the phased-in Modalidad 40 rates, 2025 through 2030
func DefaultRateTable() RateTable {
	return RateTable{
		2025: decimal.RequireFromString("0.13347"),
		2026: decimal.RequireFromString("0.14438"),
		2027: decimal.RequireFromString("0.15529"),
		2028: decimal.RequireFromString("0.16620"),
		2029: decimal.RequireFromString("0.17711"),
		2030: decimal.RequireFromString("0.18800"),
	}
}

package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML document. Parameters missing
// from the document take their 2025 defaults.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := ResolveParameters(config.Parameters)
	config.Parameters = &params

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadParametersFromFile reads only the parameters section of a YAML file
func (ip *InputParser) LoadParametersFromFile(filename string) (domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Parameters{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc struct {
		Parameters *domain.Parameters `yaml:"parameters"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Parameters{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := ResolveParameters(doc.Parameters)
	if err := ip.ValidateParameters(&params); err != nil {
		return domain.Parameters{}, fmt.Errorf("parameters validation failed: %w", err)
	}
	return params, nil
}

// ResolveParameters fills every unset field of override with the default value.
// Zero counts as unset, so a zero max_voluntary_years or benefit_horizon_years
// in YAML resolves to the default rather than to zero.
func ResolveParameters(override *domain.Parameters) domain.Parameters {
	params := domain.DefaultParameters()
	if override == nil {
		return params
	}

	o := override.Clone()
	if !o.UMA.IsZero() {
		params.UMA = o.UMA
	}
	if o.UMAYear != 0 {
		params.UMAYear = o.UMAYear
	}
	if !o.DaysPerMonth.IsZero() {
		params.DaysPerMonth = o.DaysPerMonth
	}
	if len(o.RateTable) > 0 {
		params.RateTable = o.RateTable
	}
	if len(o.ComparisonAges) > 0 {
		params.ComparisonAges = o.ComparisonAges
	}
	if o.ProjectionAges != (domain.AgeRange{}) {
		params.ProjectionAges = o.ProjectionAges
	}
	if len(o.Milestones) > 0 {
		params.Milestones = o.Milestones
	}
	if o.NormalRetirementAge != 0 {
		params.NormalRetirementAge = o.NormalRetirementAge
	}
	if o.BenefitHorizonYears != 0 {
		params.BenefitHorizonYears = o.BenefitHorizonYears
	}
	if o.MaxVoluntaryYears != 0 {
		params.MaxVoluntaryYears = o.MaxVoluntaryYears
	}
	if !o.SalaryUMABounds.Min.IsZero() {
		params.SalaryUMABounds.Min = o.SalaryUMABounds.Min
	}
	if !o.SalaryUMABounds.Max.IsZero() {
		params.SalaryUMABounds.Max = o.SalaryUMABounds.Max
	}
	if o.RetirementAges != (domain.AgeRange{}) {
		params.RetirementAges = o.RetirementAges
	}
	return params
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Parameters == nil {
		return fmt.Errorf("parameters are required")
	}
	if err := ip.ValidateParameters(config.Parameters); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}
	if err := ip.ValidateProfile(&config.Profile, config.Parameters); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}

// ValidateProfile checks the profile against the domain bounds in params
func (ip *InputParser) ValidateProfile(profile *domain.Profile, params *domain.Parameters) error {
	if profile.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if profile.LastContributionDate.IsZero() {
		return fmt.Errorf("last_contribution_date is required")
	}
	if !profile.BirthDate.Before(profile.LastContributionDate) {
		return fmt.Errorf("birth_date (%s) must be before last_contribution_date (%s)",
			profile.BirthDate.Format("2006-01-02"), profile.LastContributionDate.Format("2006-01-02"))
	}
	if profile.ContributionWeeks < 0 {
		return fmt.Errorf("contribution_weeks cannot be negative, got %d", profile.ContributionWeeks)
	}
	if !params.SalaryUMABounds.Contains(profile.SalaryUMA) {
		return fmt.Errorf("salary_uma must be between %s and %s, got %s",
			params.SalaryUMABounds.Min.String(), params.SalaryUMABounds.Max.String(), profile.SalaryUMA.String())
	}
	if !params.RetirementAges.Contains(profile.RetirementAge) {
		return fmt.Errorf("retirement_age must be between %d and %d, got %d",
			params.RetirementAges.Min, params.RetirementAges.Max, profile.RetirementAge)
	}
	return nil
}

// ValidateParameters checks the regulatory parameters for internal consistency
func (ip *InputParser) ValidateParameters(params *domain.Parameters) error {
	if !params.UMA.IsPositive() {
		return fmt.Errorf("uma must be positive, got %s", params.UMA.String())
	}
	if !params.DaysPerMonth.IsPositive() {
		return fmt.Errorf("days_per_month must be positive, got %s", params.DaysPerMonth.String())
	}
	if len(params.RateTable) == 0 {
		return fmt.Errorf("rate_table cannot be empty")
	}
	one := decimal.NewFromInt(1)
	for _, year := range params.RateTable.Years() {
		rate := params.RateTable[year]
		if !rate.IsPositive() || rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("rate for %d must be between 0 and 1, got %s", year, rate.String())
		}
	}
	if params.MaxVoluntaryYears < 0 {
		return fmt.Errorf("max_voluntary_years cannot be negative, got %d", params.MaxVoluntaryYears)
	}
	if params.BenefitHorizonYears <= 0 {
		return fmt.Errorf("benefit_horizon_years must be positive, got %d", params.BenefitHorizonYears)
	}
	if params.ProjectionAges.Max < params.ProjectionAges.Min {
		return fmt.Errorf("projection_ages max (%d) is below min (%d)", params.ProjectionAges.Max, params.ProjectionAges.Min)
	}
	if params.RetirementAges.Max < params.RetirementAges.Min {
		return fmt.Errorf("retirement_ages max (%d) is below min (%d)", params.RetirementAges.Max, params.RetirementAges.Min)
	}
	if params.SalaryUMABounds.Max.LessThan(params.SalaryUMABounds.Min) || !params.SalaryUMABounds.Min.IsPositive() {
		return fmt.Errorf("salary_uma_bounds must satisfy 0 < min <= max, got [%s, %s]",
			params.SalaryUMABounds.Min.String(), params.SalaryUMABounds.Max.String())
	}
	if len(params.ComparisonAges) == 0 {
		return fmt.Errorf("comparison_ages cannot be empty")
	}
	if len(slices.Compact(slices.Sorted(slices.Values(params.ComparisonAges)))) != len(params.ComparisonAges) {
		return fmt.Errorf("comparison_ages cannot contain duplicates, got %v", params.ComparisonAges)
	}
	if !slices.Contains(params.ComparisonAges, params.NormalRetirementAge) {
		return fmt.Errorf("comparison_ages must include the normal retirement age %d", params.NormalRetirementAge)
	}
	for _, m := range params.Milestones {
		if m <= 0 {
			return fmt.Errorf("milestones must be positive week counts, got %d", m)
		}
	}
	return nil
}

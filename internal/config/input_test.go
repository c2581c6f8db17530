package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() domain.Profile {
	return domain.Profile{
		BirthDate:            time.Date(1973, 10, 7, 0, 0, 0, 0, time.UTC),
		ContributionWeeks:    539,
		LastContributionDate: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
		SalaryUMA:            decimal.NewFromInt(25),
		RetirementAge:        65,
	}
}

func TestLoadFromFile_Example(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(filepath.Join("testdata", "example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(1973, 10, 7, 0, 0, 0, 0, time.UTC), cfg.Profile.BirthDate)
	assert.Equal(t, 539, cfg.Profile.ContributionWeeks)
	assert.Equal(t, time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), cfg.Profile.LastContributionDate)
	assert.True(t, cfg.Profile.SalaryUMA.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 65, cfg.Profile.RetirementAge)

	require.NotNil(t, cfg.Parameters)
	assert.Equal(t, domain.DefaultParameters(), *cfg.Parameters)
}

func TestLoadFromFile_CustomParameters(t *testing.T) {
	cfg, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "custom_parameters.yaml"))
	require.NoError(t, err)

	params := cfg.Parameters
	assert.True(t, params.UMA.Equal(decimal.RequireFromString("117.31")))
	assert.Equal(t, 2026, params.UMAYear)
	assert.Equal(t, []int{2026, 2027, 2028, 2029, 2030}, params.RateTable.Years())
	assert.Equal(t, []int{1000, 1500}, params.Milestones)

	// untouched fields keep their defaults
	assert.True(t, params.DaysPerMonth.Equal(decimal.RequireFromString("30.4")))
	assert.Equal(t, []int{60, 62, 63, 64, 65, 67, 70}, params.ComparisonAges)
	assert.Equal(t, 65, params.NormalRetirementAge)
	assert.True(t, cfg.Profile.SalaryUMA.Equal(decimal.RequireFromString("12.5")))
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadFromFile(filepath.Join("testdata", "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile: [unterminated"), 0o644))
		_, err := parser.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("out of range salary", func(t *testing.T) {
		doc := []byte(`
profile:
  birth_date: 1973-10-07
  contribution_weeks: 539
  last_contribution_date: 2025-12-22
  salary_uma: 30
  retirement_age: 65
`)
		_, err := parser.LoadFromBytes(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "salary_uma must be between 1 and 25")
	})
}

func TestValidateProfile(t *testing.T) {
	parser := NewInputParser()
	params := domain.DefaultParameters()

	tests := []struct {
		name    string
		mutate  func(p *domain.Profile)
		wantErr string
	}{
		{"valid", func(p *domain.Profile) {}, ""},
		{"salary at floor", func(p *domain.Profile) { p.SalaryUMA = decimal.NewFromInt(1) }, ""},
		{"zero weeks", func(p *domain.Profile) { p.ContributionWeeks = 0 }, ""},
		{"missing birth date", func(p *domain.Profile) { p.BirthDate = time.Time{} }, "birth_date is required"},
		{"missing last contribution", func(p *domain.Profile) { p.LastContributionDate = time.Time{} }, "last_contribution_date is required"},
		{"birth after contribution", func(p *domain.Profile) {
			p.BirthDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		}, "must be before last_contribution_date"},
		{"negative weeks", func(p *domain.Profile) { p.ContributionWeeks = -1 }, "contribution_weeks cannot be negative"},
		{"salary below floor", func(p *domain.Profile) { p.SalaryUMA = decimal.RequireFromString("0.5") }, "salary_uma must be between"},
		{"salary above cap", func(p *domain.Profile) { p.SalaryUMA = decimal.RequireFromString("25.5") }, "salary_uma must be between"},
		{"retirement too early", func(p *domain.Profile) { p.RetirementAge = 59 }, "retirement_age must be between 60 and 70"},
		{"retirement too late", func(p *domain.Profile) { p.RetirementAge = 71 }, "retirement_age must be between 60 and 70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := parser.ValidateProfile(&p, &params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateParameters(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(p *domain.Parameters)
		wantErr string
	}{
		{"defaults", func(p *domain.Parameters) {}, ""},
		{"zero uma", func(p *domain.Parameters) { p.UMA = decimal.Zero }, "uma must be positive"},
		{"empty rate table", func(p *domain.Parameters) { p.RateTable = domain.RateTable{} }, "rate_table cannot be empty"},
		{"rate of one", func(p *domain.Parameters) { p.RateTable[2031] = decimal.NewFromInt(1) }, "rate for 2031"},
		{"duplicate ages", func(p *domain.Parameters) { p.ComparisonAges = []int{60, 65, 65, 70} }, "comparison_ages cannot contain duplicates"},
		{"missing normal age", func(p *domain.Parameters) { p.ComparisonAges = []int{60, 70} }, "must include the normal retirement age 65"},
		{"inverted projection", func(p *domain.Parameters) { p.ProjectionAges = domain.AgeRange{Min: 70, Max: 60} }, "projection_ages"},
		{"negative milestone", func(p *domain.Parameters) { p.Milestones = []int{-5} }, "milestones must be positive"},
		{"zero horizon", func(p *domain.Parameters) { p.BenefitHorizonYears = 0 }, "benefit_horizon_years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultParameters()
			tt.mutate(&p)
			err := parser.ValidateParameters(&p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_RequiresParameters(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(&domain.Configuration{Profile: validProfile()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameters are required")
}

func TestResolveParameters(t *testing.T) {
	assert.Equal(t, domain.DefaultParameters(), ResolveParameters(nil))

	override := &domain.Parameters{MaxVoluntaryYears: 3, ProjectionAges: domain.AgeRange{Min: 58, Max: 72}}
	got := ResolveParameters(override)
	assert.Equal(t, 3, got.MaxVoluntaryYears)
	assert.Equal(t, 20, got.BenefitHorizonYears, "zero horizon resolves to the default")
	assert.Equal(t, domain.AgeRange{Min: 58, Max: 72}, got.ProjectionAges)
	assert.True(t, got.UMA.Equal(decimal.RequireFromString("113.14")))
}

func TestLoadParametersFromFile(t *testing.T) {
	params, err := NewInputParser().LoadParametersFromFile(filepath.Join("testdata", "custom_parameters.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2026, params.UMAYear)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	params, err = NewInputParser().LoadParametersFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultParameters(), params)

	dup := filepath.Join(t.TempDir(), "duplicate_ages.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("parameters:\n  comparison_ages: [60, 65, 65, 70]\n"), 0o644))
	_, err = NewInputParser().LoadParametersFromFile(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comparison_ages cannot contain duplicates")
}

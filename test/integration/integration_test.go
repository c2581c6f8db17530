package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/ley73/internal/api"
	"github.com/rgehrsitz/ley73/internal/breakeven"
	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const exampleConfig = "../../internal/config/testdata/example.yaml"

var fixtureNow = time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)

func loadEngine(t *testing.T, path string) (*domain.Configuration, *calculation.PensionEngine) {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err, "Should load configuration successfully")

	engine := calculation.NewPensionEngine(config.ResolveParameters(cfg.Parameters))
	engine.Clock = func() time.Time { return fixtureNow }
	return cfg, engine
}

// TestEndToEndCalculation drives the example profile from file to every report
func TestEndToEndCalculation(t *testing.T) {
	cfg, engine := loadEngine(t, exampleConfig)
	analysis := engine.Analyze(cfg.Profile)

	t.Run("pension", func(t *testing.T) {
		r := analysis.Result
		assert.Equal(t, 52, r.CurrentAge)
		assert.Equal(t, 1215, r.WeeksAtRetirement)
		assert.Equal(t, time.Date(2038, 10, 7, 0, 0, 0, 0, time.UTC), r.JubilationDate)
		assert.True(t, r.MonthlyPension.Equal(decimal.RequireFromString("69326.535")))
		assert.True(t, r.VoluntaryPlan.TotalCost.Equal(decimal.RequireFromString("969926.592")))
		assert.Equal(t, "1.1659", r.Recovery.Years.StringFixed(4))
	})

	t.Run("reports", func(t *testing.T) {
		for _, name := range output.AvailableFormatterNames() {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f, name)
			data, err := f.Format(analysis)
			require.NoError(t, err, name)
			assert.NotEmpty(t, data, name)
		}
	})
}

// TestScenarioPipeline checks comparison and solver agree with the engine
func TestScenarioPipeline(t *testing.T) {
	cfg, engine := loadEngine(t, exampleConfig)

	set, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
		Templates: []string{"retire_62", "postpone_2yr"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 2)
	assert.True(t, set.BaseResult.MonthlyPension.Equal(engine.PensionAt(cfg.Profile, fixtureNow, 65)))
	assert.True(t, set.AlternativeResults[0].MonthlyPension.Equal(engine.PensionAt(cfg.Profile, fixtureNow, 62)))

	result, err := breakeven.NewDefaultSolver(engine).Optimize(context.Background(), breakeven.OptimizationRequest{
		Profile: cfg.Profile,
		Target:  breakeven.OptimizeCumulative,
	})
	require.NoError(t, err)
	require.NotNil(t, result.OptimalRetirementAge)
	assert.Equal(t, 65, *result.OptimalRetirementAge)

	target := set.AlternativeResults[0].MonthlyPension
	ageResult, err := breakeven.NewDefaultSolver(engine).Optimize(context.Background(), breakeven.OptimizationRequest{
		Profile:     cfg.Profile,
		Target:      breakeven.OptimizeRetirementAge,
		Constraints: breakeven.Constraints{TargetPension: &target},
	})
	require.NoError(t, err)
	assert.True(t, ageResult.Success)
	assert.Equal(t, 62, *ageResult.OptimalRetirementAge)
}

// TestCustomParameters runs a profile against a non-default parameter edition
func TestCustomParameters(t *testing.T) {
	cfg, engine := loadEngine(t, "../../internal/config/testdata/custom_parameters.yaml")
	assert.Equal(t, 2026, engine.Params.UMAYear)

	analysis := engine.Analyze(cfg.Profile)
	require.Len(t, analysis.Result.Milestones, 2)
	assert.Equal(t, 62, analysis.Result.RetirementAge)
	assert.True(t, analysis.Result.MonthlyPension.IsPositive())
}

// TestAPIMatchesEngine checks that the HTTP surface returns the engine's numbers
func TestAPIMatchesEngine(t *testing.T) {
	cfg, engine := loadEngine(t, exampleConfig)
	handler := api.NewHandler(engine, nil)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/v1/analysis")
	ctx.Request.SetBodyString(`{"birthDate":"1973-10-07","contributionWeeks":539,` +
		`"lastContributionDate":"2025-12-22","salaryUMA":25,"retirementAge":65}`)
	handler.Handle(ctx)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var got domain.Analysis
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	want := engine.Analyze(cfg.Profile)
	assert.True(t, want.Result.MonthlyPension.Equal(got.Result.MonthlyPension))
	assert.Equal(t, len(want.Comparison), len(got.Comparison))
}

// TestConfigurationValidation rejects broken profiles before any calculation
func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cases := map[string]string{
		"salary above cap": "profile:\n  birth_date: 1973-10-07\n  contribution_weeks: 539\n  last_contribution_date: 2025-12-22\n  salary_uma: 26\n  retirement_age: 65\n",
		"age too low":      "profile:\n  birth_date: 1973-10-07\n  contribution_weeks: 539\n  last_contribution_date: 2025-12-22\n  salary_uma: 25\n  retirement_age: 55\n",
		"missing birth":    "profile:\n  contribution_weeks: 539\n  last_contribution_date: 2025-12-22\n  salary_uma: 25\n  retirement_age: 65\n",
	}
	for name, doc := range cases {
		t.Run(strings.ReplaceAll(name, " ", "_"), func(t *testing.T) {
			_, err := parser.LoadFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}

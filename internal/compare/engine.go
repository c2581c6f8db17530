package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/transform"
)

// BaseScenarioName labels the unmodified profile in a comparison
const BaseScenarioName = "base"

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.PensionEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	Validator         *config.InputParser
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.PensionEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(calcEngine.Params.BenefitHorizonYears),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		Validator:         config.NewInputParser(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates []string // List of template names to apply
	Now       time.Time
}

// Compare runs the base profile and each template as alternative scenarios
func (ce *CompareEngine) Compare(
	ctx context.Context,
	cfg *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	now := options.Now
	if now.IsZero() {
		now = ce.CalcEngine.Now()
	}

	baseAnalysis := ce.CalcEngine.AnalyzeAt(cfg.Profile, now)
	baseResult := ce.MetricsCalculator.CalculateMetrics(BaseScenarioName, baseAnalysis)
	baseResult.Description = "Profile as configured"

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(cfg.Profile, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		params := ce.CalcEngine.Params
		if err := ce.Validator.ValidateProfile(&modified, &params); err != nil {
			return nil, fmt.Errorf("template %s produces an invalid profile: %w", templateName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(template.Name, ce.CalcEngine.AnalyzeAt(modified, now))
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}

	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

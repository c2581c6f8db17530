package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ProfileTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common Modalidad 40 scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, age := range []int{60, 62, 64, 67, 70} {
		registry.Register(Template{
			Name:        fmt.Sprintf("retire_%d", age),
			Description: fmt.Sprintf("Retire at age %d", age),
			Transforms:  []ProfileTransform{&SetRetirementAge{Age: age}},
		})
	}

	registry.Register(Template{
		Name:        "postpone_1yr",
		Description: "Postpone retirement by 1 year",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: 1}},
	})

	registry.Register(Template{
		Name:        "postpone_2yr",
		Description: "Postpone retirement by 2 years",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: 2}},
	})

	registry.Register(Template{
		Name:        "early_1yr",
		Description: "Retire 1 year earlier",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: -1}},
	})

	for _, uma := range []int64{10, 15} {
		registry.Register(Template{
			Name:        fmt.Sprintf("salary_%d", uma),
			Description: fmt.Sprintf("Register a Modalidad 40 salary of %d UMA", uma),
			Transforms:  []ProfileTransform{&SetSalaryUMA{SalaryUMA: decimal.NewFromInt(uma)}},
		})
	}

	registry.Register(Template{
		Name:        "salary_max",
		Description: "Register the maximum salary of 25 UMA",
		Transforms:  []ProfileTransform{&SetSalaryUMA{SalaryUMA: decimal.NewFromInt(25)}},
	})

	registry.Register(Template{
		Name:        "salary_min",
		Description: "Register the minimum salary of 1 UMA",
		Transforms:  []ProfileTransform{&SetSalaryUMA{SalaryUMA: decimal.NewFromInt(1)}},
	})

	registry.Register(Template{
		Name:        "early_max_salary",
		Description: "Retire at 62 with the maximum salary of 25 UMA",
		Transforms: []ProfileTransform{
			&SetRetirementAge{Age: 62},
			&SetSalaryUMA{SalaryUMA: decimal.NewFromInt(25)},
		},
	})

	registry.Register(Template{
		Name:        "late_mid_salary",
		Description: "Retire at 67 with a salary of 15 UMA",
		Transforms: []ProfileTransform{
			&SetRetirementAge{Age: 67},
			&SetSalaryUMA{SalaryUMA: decimal.NewFromInt(15)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base profile
func ApplyTemplate(base domain.Profile, template Template) (domain.Profile, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case len(template.Transforms) > 1:
			categories["Combination Strategies"] = append(categories["Combination Strategies"], template)
		case strings.HasPrefix(name, "salary_"):
			categories["Modalidad 40 Salary"] = append(categories["Modalidad 40 Salary"], template)
		default:
			categories["Retirement Timing"] = append(categories["Retirement Timing"], template)
		}
	}

	for _, category := range []string{"Retirement Timing", "Modalidad 40 Salary", "Combination Strategies"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  ley73 compare profile.yaml --with retire_60,salary_15\n")
	sb.WriteString("  ley73 compare profile.yaml --with postpone_2yr,early_max_salary\n")

	return sb.String()
}

package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/tui/components"
)

// Slider positions
const (
	sliderSalary = iota
	sliderAge
	sliderWeeks
)

const maxContributionWeeks = 2600

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration
	engine     *calculation.PensionEngine
	now        time.Time // Zero means the engine clock
	base       domain.Profile

	// Inputs
	sliders []*components.ParameterSlider
	focused int

	// Output
	view       View
	analysis   *domain.Analysis
	comparison table.Model
	seq        int

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a model that loads its configuration from configPath
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		keys:       defaultKeyMap(),
		help:       help.New(),
		comparison: components.NewComparisonTable(nil, 9),
		width:      100,
		height:     30,
		loading:    true,
	}
}

// NewModelFromConfig creates a model around an already loaded configuration.
// A zero now follows the wall clock.
func NewModelFromConfig(cfg *domain.Configuration, now time.Time) Model {
	m := NewModel("")
	m.now = now
	return m.withConfig(cfg)
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.config == nil {
		return loadConfigCmd(m.configPath)
	}
	return m.recalcCmd()
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// withConfig installs the configuration and builds sliders from its profile
func (m Model) withConfig(cfg *domain.Configuration) Model {
	params := config.ResolveParameters(cfg.Parameters)
	m.config = cfg
	m.engine = calculation.NewPensionEngine(params)
	m.base = cfg.Profile

	salary := components.NewParameterSlider("Modalidad 40 Salary",
		cfg.Profile.SalaryUMA.InexactFloat64(),
		params.SalaryUMABounds.Min.InexactFloat64(),
		params.SalaryUMABounds.Max.InexactFloat64(), 0.5).
		WithBigStep(5).
		WithUnit(" UMA").
		WithFormat("%.1f").
		WithDescription("Registered salary as a multiple of the daily UMA")
	age := components.NewParameterSlider("Retirement Age",
		float64(cfg.Profile.RetirementAge),
		float64(params.RetirementAges.Min),
		float64(params.RetirementAges.Max), 1).
		WithUnit(" years").
		WithFormat("%.0f").
		WithDescription("Age at which the pension starts")
	weeks := components.NewParameterSlider("Contribution Weeks",
		float64(cfg.Profile.ContributionWeeks), 0, maxContributionWeeks, 1).
		WithBigStep(52).
		WithFormat("%.0f").
		WithDescription("Weeks credited so far; shift+arrows move a year")

	m.sliders = []*components.ParameterSlider{salary, age, weeks}
	m.focused = sliderSalary
	m.sliders[m.focused].SetFocused(true)
	return m
}

// profile applies the slider values to the loaded profile
func (m Model) profile() domain.Profile {
	p := m.base
	if len(m.sliders) == 0 {
		return p
	}
	p.SalaryUMA = decimal.NewFromFloat(m.sliders[sliderSalary].Value)
	p.RetirementAge = int(math.Round(m.sliders[sliderAge].Value))
	p.ContributionWeeks = int(math.Round(m.sliders[sliderWeeks].Value))
	return p
}

// recalcCmd analyzes the current profile off the update loop
func (m Model) recalcCmd() tea.Cmd {
	engine, p, now, seq := m.engine, m.profile(), m.now, m.seq
	return func() tea.Msg {
		if now.IsZero() {
			now = engine.Now()
		}
		return AnalysisCompleteMsg{Seq: seq, Analysis: engine.AnalyzeAt(p, now)}
	}
}

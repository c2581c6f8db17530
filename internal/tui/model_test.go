package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ley73/internal/domain"
)

var fixtureNow = time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)

func fixtureConfig() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			BirthDate:            time.Date(1973, 10, 7, 0, 0, 0, 0, time.UTC),
			ContributionWeeks:    539,
			LastContributionDate: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
			SalaryUMA:            decimal.NewFromInt(25),
			RetirementAge:        65,
		},
	}
}

// settle runs a command and feeds its message back into the model
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func readyModel(t *testing.T) Model {
	t.Helper()
	m := NewModelFromConfig(fixtureConfig(), fixtureNow)
	return settle(t, m, m.Init())
}

func TestModel_InitialAnalysis(t *testing.T) {
	m := readyModel(t)
	require.NotNil(t, m.analysis)
	assert.False(t, m.loading)
	assert.Equal(t, "69326.535", m.analysis.Result.MonthlyPension.String())
	assert.Len(t, m.comparison.Rows(), 7)
	assert.Equal(t, ViewResults, m.view)
}

func TestModel_SliderAdjustmentRecalculates(t *testing.T) {
	m := readyModel(t)

	// Salary is already at the 25 UMA ceiling
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.seq)

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.seq)
	m = settle(t, m, cmd)
	assert.Equal(t, "24.5", m.analysis.Profile.SalaryUMA.String())
	assert.True(t, m.analysis.Result.MonthlyPension.LessThan(decimal.RequireFromString("69326.535")))
}

func TestModel_FocusMovesBetweenSliders(t *testing.T) {
	m := readyModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, sliderAge, m.focused)
	assert.True(t, m.sliders[sliderAge].IsFocused)
	assert.False(t, m.sliders[sliderSalary].IsFocused)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = settle(t, m, cmd)
	assert.Equal(t, 66, m.analysis.Result.RetirementAge)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, sliderWeeks, m.focused, "focus wraps around")

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	m = settle(t, m, cmd)
	assert.Equal(t, 591, m.analysis.Profile.ContributionWeeks)
}

func TestModel_StaleResultsAreDropped(t *testing.T) {
	m := readyModel(t)

	m, first := press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, second := press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, first)
	require.NotNil(t, second)

	latest := second()
	stale := first()

	next, _ := m.Update(latest)
	m = next.(Model)
	next, _ = m.Update(stale)
	m = next.(Model)
	assert.Equal(t, "24", m.analysis.Profile.SalaryUMA.String())
}

func TestModel_ToggleAndHelp(t *testing.T) {
	m := readyModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewComparison, m.view)
	assert.Contains(t, m.View(), "Age Comparison")

	// Vertical keys drive the table in the comparison view
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, sliderSalary, m.focused)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewResults, m.view)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
}

func TestModel_Quit(t *testing.T) {
	m := readyModel(t)
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ConfigLoading(t *testing.T) {
	m := NewModel("../config/testdata/example.yaml")
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Calculating")

	next, _ := m.Update(m.Init()())
	m = next.(Model)
	if m.err != nil {
		t.Fatalf("loading example config: %v", m.err)
	}
	require.Len(t, m.sliders, 3)
	assert.NotNil(t, m.engine)
}

func TestModel_ErrorView(t *testing.T) {
	m := NewModel("does-not-exist.yaml")
	next, _ := m.Update(m.Init()())
	m = next.(Model)
	require.Error(t, m.err)

	next, _ = m.Update(ErrorMsg{Err: errors.New("boom")})
	m = next.(Model)
	assert.Contains(t, m.View(), "Error: boom")
}

func TestModel_ResultsView(t *testing.T) {
	m := readyModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	m = next.(Model)
	assert.Equal(t, 160, m.width)

	out := m.View()
	assert.Contains(t, out, "Monthly Pension")
	assert.Contains(t, out, "$69,326.54")
	assert.Contains(t, out, "Milestones")
	assert.Contains(t, out, "7 oct 2038")
}

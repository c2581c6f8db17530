package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ley73/internal/tui/components"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m = m.withConfig(msg.Config)
		return m, m.recalcCmd()

	case AnalysisCompleteMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.analysis = msg.Analysis
		m.comparison.SetRows(components.ComparisonRows(msg.Analysis.Comparison))
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.view == ViewResults {
			m.view = ViewComparison
		} else {
			m.view = ViewResults
		}
		return m, nil
	}

	if len(m.sliders) == 0 {
		return m, nil
	}

	// The comparison table owns vertical movement while it is shown
	if m.view == ViewComparison && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)) {
		var cmd tea.Cmd
		m.comparison, cmd = m.comparison.Update(msg)
		return m, cmd
	}

	slider := m.sliders[m.focused]
	changed := false

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.BigLeft):
		changed = slider.DecrementBig()
	case key.Matches(msg, m.keys.BigRight):
		changed = slider.IncrementBig()
	case key.Matches(msg, m.keys.Left):
		changed = slider.Decrement()
	case key.Matches(msg, m.keys.Right):
		changed = slider.Increment()
	}

	if !changed {
		return m, nil
	}
	m.seq++
	return m, m.recalcCmd()
}

// moveFocus shifts slider focus, wrapping at either end
func (m *Model) moveFocus(delta int) {
	m.sliders[m.focused].SetFocused(false)
	m.focused = (m.focused + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focused].SetFocused(true)
}

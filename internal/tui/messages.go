package tui

import (
	"github.com/rgehrsitz/ley73/internal/domain"
)

// View selects what the right-hand pane shows
type View int

const (
	ViewResults View = iota
	ViewComparison
)

func (v View) String() string {
	switch v {
	case ViewResults:
		return "Results"
	case ViewComparison:
		return "Age Comparison"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// AnalysisCompleteMsg carries a finished recalculation. Seq lets the model
// drop results that a newer adjustment has already superseded.
type AnalysisCompleteMsg struct {
	Seq      int
	Analysis *domain.Analysis
}

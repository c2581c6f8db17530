package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ley73/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable profile input with a visual track
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	BigStep     float64 // Applied by shift+arrow; defaults to Step
	Unit        string  // e.g. " UMA", " years"
	Format      string  // e.g. "%.1f", "%.0f"
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider clamped to [min, max]
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:   label,
		Min:     min,
		Max:     max,
		Step:    step,
		BigStep: step,
		Format:  "%.2f",
		Width:   30,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithBigStep sets the coarse adjustment
func (p *ParameterSlider) WithBigStep(step float64) *ParameterSlider {
	p.BigStep = step
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment increases the value by step, stopping at Max
func (p *ParameterSlider) Increment() bool {
	return p.adjust(p.Step)
}

// Decrement decreases the value by step, stopping at Min
func (p *ParameterSlider) Decrement() bool {
	return p.adjust(-p.Step)
}

// IncrementBig increases the value by BigStep, stopping at Max
func (p *ParameterSlider) IncrementBig() bool {
	return p.adjust(p.BigStep)
}

// DecrementBig decreases the value by BigStep, stopping at Min
func (p *ParameterSlider) DecrementBig() bool {
	return p.adjust(-p.BigStep)
}

// adjust moves the value and reports whether it changed
func (p *ParameterSlider) adjust(delta float64) bool {
	before := p.Value
	p.SetValue(p.Value + delta)
	return p.Value != before
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// FormattedValue renders the value with its unit
func (p *ParameterSlider) FormattedValue() string {
	return fmt.Sprintf(p.Format, p.Value) + p.Unit
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.FormattedValue()))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	rangeText := fmt.Sprintf("%s  ─  %s", fmt.Sprintf(p.Format, p.Min)+p.Unit, fmt.Sprintf(p.Format, p.Max)+p.Unit)
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(rangeText))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

// renderSliderBar draws the track with the thumb at the current value
func (p *ParameterSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	filled = max(0, min(p.Width, filled))
	empty := max(0, p.Width-filled)

	trackStyle := tuistyles.SliderTrackStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	return bar.String()
}

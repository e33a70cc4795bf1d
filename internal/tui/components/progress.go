package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tui/tuistyles"
)

// HoursBar shows the week's hours against the overtime threshold. Hours past
// the threshold are drawn in the accent color.
type HoursBar struct {
	Hours     decimal.Decimal
	Threshold decimal.Decimal
	Width     int
}

// NewHoursBar creates a new hours bar
func NewHoursBar(hours, threshold decimal.Decimal) *HoursBar {
	return &HoursBar{
		Hours:     hours,
		Threshold: threshold,
		Width:     40,
	}
}

// WithWidth sets the bar width
func (p *HoursBar) WithWidth(width int) *HoursBar {
	p.Width = width
	return p
}

// Fraction returns hours/threshold, clamped to [0, 1]. A zero threshold means
// every hour is overtime, so any positive hours fill the bar.
func (p *HoursBar) Fraction() float64 {
	if !p.Hours.IsPositive() {
		return 0
	}
	if !p.Threshold.IsPositive() {
		return 1
	}
	f := p.Hours.Div(p.Threshold).InexactFloat64()
	if f > 1 {
		return 1
	}
	return f
}

// InOvertime reports whether the hours exceed the threshold.
func (p *HoursBar) InOvertime() bool {
	return p.Hours.GreaterThan(p.Threshold)
}

// Render returns the styled bar followed by "hours / threshold".
func (p *HoursBar) Render() string {
	filled := int(float64(p.Width) * p.Fraction())
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	fill := tuistyles.ColorSuccess
	if p.InOvertime() {
		fill = tuistyles.ColorAccent
	}
	barStyle := lipgloss.NewStyle().Foreground(fill)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	var b strings.Builder
	b.WriteString("[")
	if filled > 0 {
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		b.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	b.WriteString("] ")
	b.WriteString(tuistyles.MetricValueStyle.Render(output.FormatHours(p.Hours)))
	b.WriteString(tuistyles.SubtitleStyle.Render(" / " + output.FormatHours(p.Threshold)))
	return b.String()
}

// Package tuistyles holds the dashboard palette and shared lipgloss styles.
// It lives apart from tui so components can import it without a cycle.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

	ColorForeground = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	IdleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	TimerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricNegativeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground).
				Background(lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"})
)

// MoneyStyle picks the value style for an amount; negative amounts are red.
func MoneyStyle(amount decimal.Decimal) lipgloss.Style {
	if amount.IsNegative() {
		return MetricNegativeStyle
	}
	return MetricValueStyle
}

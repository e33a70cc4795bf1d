package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tui/tuistyles"
)

// MetricCard displays a single figure with a label and an optional note.
type MetricCard struct {
	Label string
	Value string
	Note  string
	Width int

	valueStyle lipgloss.Style
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label:      label,
		Value:      value,
		Width:      22,
		valueStyle: tuistyles.MetricValueStyle,
	}
}

// NewMoneyCard creates a card for a dollar amount. Negative amounts render
// in the danger color.
func NewMoneyCard(label string, amount decimal.Decimal) *MetricCard {
	c := NewMetricCard(label, output.FormatCurrency(amount))
	c.valueStyle = tuistyles.MoneyStyle(amount)
	return c
}

// WithNote adds a muted line under the value.
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + m.valueStyle.Render(m.Value)
	if m.Note != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Note)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns a one-line version without border
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + m.valueStyle.Render(m.Value)
}

// MetricGrid renders cards in rows of the given column count.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoursBar_Fraction(t *testing.T) {
	tests := []struct {
		name      string
		hours     int64
		threshold int64
		want      float64
		overtime  bool
	}{
		{"empty week", 0, 40, 0, false},
		{"half way", 20, 40, 0.5, false},
		{"exactly at threshold", 40, 40, 1, false},
		{"overtime clamps", 45, 40, 1, true},
		{"zero threshold", 5, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewHoursBar(decimal.NewFromInt(tt.hours), decimal.NewFromInt(tt.threshold))
			assert.InDelta(t, tt.want, bar.Fraction(), 1e-9)
			assert.Equal(t, tt.overtime, bar.InOvertime())
		})
	}
}

func TestHoursBar_Render(t *testing.T) {
	out := NewHoursBar(decimal.NewFromInt(10), decimal.NewFromInt(40)).WithWidth(8).Render()
	assert.Contains(t, out, "10.00h")
	assert.Contains(t, out, "40.00h")
}

func TestMetricCard(t *testing.T) {
	card := NewMoneyCard("Net (est)", decimal.RequireFromString("-40.77")).WithNote("after withholding")
	out := card.Render()
	assert.Contains(t, out, "Net (est)")
	assert.Contains(t, out, "$-40.77")
	assert.Contains(t, out, "after withholding")

	assert.Contains(t, NewMetricCard("Hours", "8.00h").RenderCompact(), "Hours:")
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 3))

	cards := []*MetricCard{
		NewMetricCard("A", "1"),
		NewMetricCard("B", "2"),
		NewMetricCard("C", "3"),
	}
	out := MetricGrid(cards, 2)
	for _, s := range []string{"A", "B", "C"} {
		assert.Contains(t, out, s)
	}
}

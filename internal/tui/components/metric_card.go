package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifebridge/lifebridge/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard displays a single figure with label and optional change
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend is a figure's change against the starting profile
type Trend struct {
	IsPositive bool
	Change     string
}

// NewMetricCard creates a card showing a yen amount
func NewMetricCard(label string, amount decimal.Decimal) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: tuistyles.FormatYen(amount),
		Width: 24,
	}
}

// WithDelta adds a trend for delta; a zero delta adds nothing
func (m *MetricCard) WithDelta(delta decimal.Decimal) *MetricCard {
	if delta.IsZero() {
		m.Trend = nil
		return m
	}
	change := tuistyles.FormatYen(delta)
	if delta.IsPositive() {
		change = "+" + change
	}
	m.Trend = &Trend{IsPositive: delta.IsPositive(), Change: change}
	return m
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		arrow := tuistyles.TrendIndicator(m.Trend.IsPositive)
		trend = "\n" + tuistyles.MetricTrendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
	}

	var desc string
	if m.Description != "" {
		desc = "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + trend + desc)
}

// MetricGrid renders cards in rows of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := []string{}
	currentRow := []string{}
	for i, card := range cards {
		currentRow = append(currentRow, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

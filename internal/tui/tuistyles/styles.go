// Package tuistyles holds the explorer's colours and lipgloss styles. It is a
// separate package so components can share styles without an import cycle.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#F25D94")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF4672")
	ColorInfo    = lipgloss.Color("#3C91E6")
	ColorMuted   = lipgloss.Color("#626262")
	ColorBorder  = lipgloss.Color("#383838")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	TableCellStyle   = lipgloss.NewStyle()
	EligibleStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	IneligibleStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	FlagOnStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	FlagOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
)

// MetricTrendStyle colours a change green when it is an increase
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatYen renders amount the same way the report formatters do
func FormatYen(amount decimal.Decimal) string {
	return output.FormatYen(amount)
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/lifebridge/lifebridge/internal/tui/tuistyles"
)

// BenefitTable renders one row per benefit result
type BenefitTable struct {
	Benefits    []domain.BenefitResult
	ShowReasons bool
}

// NewBenefitTable creates a table for benefits
func NewBenefitTable(benefits []domain.BenefitResult) *BenefitTable {
	return &BenefitTable{Benefits: benefits}
}

// WithReasons includes each rule's reason under its row
func (t *BenefitTable) WithReasons(show bool) *BenefitTable {
	t.ShowReasons = show
	return t
}

// Render returns the styled table
func (t *BenefitTable) Render() string {
	nameWidth := 10
	for _, b := range t.Benefits {
		nameWidth = max(nameWidth, lipgloss.Width(b.Name))
	}

	var sb strings.Builder
	header := fmt.Sprintf("%-3s %s  %12s  %-9s  %12s", "", pad("Benefit", nameWidth), "Amount", "Period", "Total")
	sb.WriteString(tuistyles.TableHeaderStyle.Render(header))
	sb.WriteString("\n")

	for _, b := range t.Benefits {
		mark, style := "✗", tuistyles.IneligibleStyle
		if b.Eligibility {
			mark, style = "✓", tuistyles.EligibleStyle
		}
		row := fmt.Sprintf("%-3s %s  %12s  %-9s  %12s",
			mark,
			pad(b.Name, nameWidth),
			output.FormatYen(b.Amount),
			output.FormatFrequency(b.Frequency),
			output.FormatYen(b.TotalAmount))
		sb.WriteString(style.Render(row))
		sb.WriteString("\n")

		if t.ShowReasons && b.Reason != "" {
			sb.WriteString(tuistyles.SubtitleStyle.Render("    " + b.Reason))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// pad right-pads s to width display cells; fmt widths count runes, which
// misaligns full-width Japanese names.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

package compare

import (
	"fmt"
	"strings"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("LIFE EVENT BENEFIT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "One-time",
		numWidth, "Monthly",
		numWidth, "First-year Total"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseScenarioName+" (base)", compSet.BaseResult, nameWidth, numWidth))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(alt.ScenarioName, alt.Result, nameWidth, numWidth))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Total benefits:   %s%s\n", tf.deltaSymbol(alt.Difference), output.FormatYen(alt.Difference)))

			for _, d := range alt.Deltas {
				if !d.Changed() {
					continue
				}
				sb.WriteString(fmt.Sprintf("  %-16s %s%s%s\n",
					string(d.ID)+":", tf.deltaSymbol(d.Delta), output.FormatYen(d.Delta), tf.eligibilityNote(d)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nHIGHLIGHTS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(name string, result *domain.SimulationResult, nameWidth, numWidth int) string {
	if result == nil {
		return fmt.Sprintf("%-*s\n", nameWidth, tf.truncate(name, nameWidth))
	}
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatYen(result.OneTimeBenefits),
		numWidth, output.FormatYen(result.MonthlyBenefits),
		numWidth, output.FormatYen(result.TotalBenefits))
}

func (tf *TableFormatter) eligibilityNote(d BenefitDelta) string {
	switch {
	case d.EligibleAfter && !d.EligibleBefore:
		return " (newly eligible)"
	case d.EligibleBefore && !d.EligibleAfter:
		return " (no longer eligible)"
	}
	return ""
}

// deltaSymbol returns a + for gains; FormatYen already prints the minus
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.Difference.IsZero() {
			change = tf.deltaSymbol(alt.Difference) + output.FormatYen(alt.Difference)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}

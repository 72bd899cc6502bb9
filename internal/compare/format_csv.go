package compare

import (
	"encoding/csv"
	"strings"

	"github.com/lifebridge/lifebridge/internal/domain"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"One-time Benefits",
		"Monthly Benefits",
		"Yearly Benefits",
		"Total Benefits",
		"Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseScenarioName, "base", compSet.BaseResult, "0")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(alt.ScenarioName, "alternative", alt.Result, alt.Difference.StringFixed(0))); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a simulation as a CSV row
func (cf *CSVFormatter) formatRow(name, scenarioType string, result *domain.SimulationResult, diff string) []string {
	return []string{
		name,
		scenarioType,
		result.OneTimeBenefits.StringFixed(0),
		result.MonthlyBenefits.StringFixed(0),
		result.YearlyBenefits.StringFixed(0),
		result.TotalBenefits.StringFixed(0),
		diff,
	}
}

package compare

import (
	"fmt"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/shopspring/decimal"
)

// BenefitDelta is the change in one benefit between base and alternative
type BenefitDelta struct {
	ID             domain.BenefitID `json:"id"`
	Name           string           `json:"name"`
	EligibleBefore bool             `json:"eligibleBefore"`
	EligibleAfter  bool             `json:"eligibleAfter"`
	TotalBefore    decimal.Decimal  `json:"totalBefore"`
	TotalAfter     decimal.Decimal  `json:"totalAfter"`
	Delta          decimal.Decimal  `json:"delta"`
}

// Changed reports whether eligibility or amount moved
func (d BenefitDelta) Changed() bool {
	return d.EligibleBefore != d.EligibleAfter || !d.Delta.IsZero()
}

// ComparisonResult is one alternative measured against the base
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description,omitempty"`
	Profile      domain.UserProfile       `json:"profile"`
	Result       *domain.SimulationResult `json:"result"`
	// Difference is this scenario's total benefits minus the base's.
	Difference decimal.Decimal `json:"difference"`
	Deltas     []BenefitDelta  `json:"deltas"`
}

// ComparisonSet represents a base scenario and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string                   `json:"baseScenarioName"`
	BaseResult         *domain.SimulationResult `json:"baseResult"`
	AlternativeResults []ComparisonResult       `json:"alternativeResults"`
	Recommendations    []string                 `json:"recommendations"`
	ConfigPath         string                   `json:"configPath,omitempty"`
}

// CalculateDeltas pairs the benefits of base and alt by catalogue id
func CalculateDeltas(base, alt *domain.SimulationResult) []BenefitDelta {
	deltas := make([]BenefitDelta, 0, len(base.Benefits))
	for _, before := range base.Benefits {
		after, ok := alt.Benefit(before.ID)
		if !ok {
			after = domain.BenefitResult{TotalAmount: decimal.Zero}
		}
		deltas = append(deltas, BenefitDelta{
			ID:             before.ID,
			Name:           before.Name,
			EligibleBefore: before.Eligibility,
			EligibleAfter:  after.Eligibility,
			TotalBefore:    before.TotalAmount,
			TotalAfter:     after.TotalAmount,
			Delta:          after.TotalAmount.Sub(before.TotalAmount),
		})
	}
	return deltas
}

// GenerateRecommendations summarizes the biggest wins and losses
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	best := &compSet.AlternativeResults[0]
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].Difference.GreaterThan(best.Difference) {
			best = &compSet.AlternativeResults[i]
		}
	}
	if best.Difference.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Most support: %s adds %s in first-year benefits", best.ScenarioName, output.FormatYen(best.Difference)))
	}

	for _, alt := range compSet.AlternativeResults {
		for _, d := range alt.Deltas {
			switch {
			case d.EligibleAfter && !d.EligibleBefore:
				recommendations = append(recommendations,
					fmt.Sprintf("%s: becomes eligible for %s (%s)", alt.ScenarioName, d.Name, output.FormatYen(d.TotalAfter)))
			case d.EligibleBefore && !d.EligibleAfter:
				recommendations = append(recommendations,
					fmt.Sprintf("%s: loses %s (%s)", alt.ScenarioName, d.Name, output.FormatYen(d.TotalBefore)))
			}
		}
	}

	return recommendations
}

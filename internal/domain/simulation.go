package domain

import "github.com/shopspring/decimal"

// SimulationResult aggregates every benefit result for one profile
type SimulationResult struct {
	// Profile is a copy of the input exactly as given.
	Profile         UserProfile     `yaml:"profile" json:"profile"`
	Benefits        []BenefitResult `yaml:"benefits" json:"benefits"`
	TotalBenefits   decimal.Decimal `yaml:"total_benefits" json:"totalBenefits"`
	MonthlyBenefits decimal.Decimal `yaml:"monthly_benefits" json:"monthlyBenefits"`
	YearlyBenefits  decimal.Decimal `yaml:"yearly_benefits" json:"yearlyBenefits"`
	OneTimeBenefits decimal.Decimal `yaml:"one_time_benefits" json:"oneTimeBenefits"`
}

// Eligible returns the eligible benefits in catalogue order
func (r *SimulationResult) Eligible() []BenefitResult {
	eligible := make([]BenefitResult, 0, len(r.Benefits))
	for _, b := range r.Benefits {
		if b.Eligibility {
			eligible = append(eligible, b)
		}
	}
	return eligible
}

// Benefit returns the result for id
func (r *SimulationResult) Benefit(id BenefitID) (BenefitResult, bool) {
	for _, b := range r.Benefits {
		if b.ID == id {
			return b, true
		}
	}
	return BenefitResult{}, false
}

// Comparison holds two simulations and the change in total benefits between them
type Comparison struct {
	Scenario1  SimulationResult `yaml:"scenario1" json:"scenario1"`
	Scenario2  SimulationResult `yaml:"scenario2" json:"scenario2"`
	Difference decimal.Decimal  `yaml:"difference" json:"difference"` // scenario2 minus scenario1
}

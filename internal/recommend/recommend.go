// Package recommend turns a simulation into a prioritized list of actions
// the household should take.
package recommend

import (
	"fmt"
	"sort"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// Urgency orders recommendations; high comes first
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

func (u Urgency) rank() int {
	switch u {
	case UrgencyHigh:
		return 0
	case UrgencyMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is one suggested action
type Recommendation struct {
	ID                string   `yaml:"id" json:"id"`
	Title             string   `yaml:"title" json:"title"`
	Description       string   `yaml:"description" json:"description"`
	Urgency           Urgency  `yaml:"urgency" json:"urgency"`
	Deadline          string   `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	RequiredDocuments []string `yaml:"required_documents,omitempty" json:"requiredDocuments,omitempty"`
}

// SpouseDeductionLimit is the spouse income at or below which the full
// spouse deduction applies.
var SpouseDeductionLimit = decimal.NewFromInt(1030000)

var benefitUrgency = map[domain.BenefitID]Urgency{
	domain.BenefitBirthAllowance: UrgencyHigh,
	domain.BenefitChildAllowance: UrgencyMedium,
	domain.BenefitParentalLeave:  UrgencyHigh,
	domain.BenefitUnemployment:   UrgencyHigh,
	domain.BenefitChildMedical:   UrgencyLow,
}

// Build returns recommendations for result: one per eligible benefit, then
// profile-based suggestions, ordered by urgency (ties keep that order).
func Build(result *domain.SimulationResult) []Recommendation {
	var recs []Recommendation

	for _, b := range result.Eligible() {
		urgency, ok := benefitUrgency[b.ID]
		if !ok {
			urgency = UrgencyLow
		}
		recs = append(recs, Recommendation{
			ID:                "apply_" + string(b.ID),
			Title:             "Apply for " + b.Name,
			Description:       fmt.Sprintf("%s. Estimated %s.", b.Reason, describeAmount(b)),
			Urgency:           urgency,
			Deadline:          b.ApplicationDeadline,
			RequiredDocuments: append([]string(nil), b.RequiredDocuments...),
		})
	}

	recs = append(recs, profileSuggestions(&result.Profile)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Urgency.rank() < recs[j].Urgency.rank()
	})
	return recs
}

func profileSuggestions(p *domain.UserProfile) []Recommendation {
	var recs []Recommendation

	if p.IsPregnant && p.HasStatus(domain.EmploymentEmployed) && !p.IsOnLeave() {
		withLeave := p.Clone()
		withLeave.IsTakingMaternityLeave = true
		leave := calculation.ParentalLeaveAllowance(&withLeave)
		recs = append(recs, Recommendation{
			ID:    "plan_childcare_leave",
			Title: "Plan childcare leave",
			Description: fmt.Sprintf("Taking childcare leave would pay about ¥%s over the first year.",
				leave.TotalAmount.StringFixed(0)),
			Urgency:  UrgencyMedium,
			Deadline: "tell your employer at least 1 month before leave starts",
		})
	}

	if p.HasSpouse && p.SpouseIncome != nil && p.SpouseIncome.LessThanOrEqual(SpouseDeductionLimit) {
		recs = append(recs, Recommendation{
			ID:          "spouse_deduction",
			Title:       "Claim the spouse deduction",
			Description: "Your spouse's income is within the limit for the spouse deduction at year-end adjustment.",
			Urgency:     UrgencyLow,
			Deadline:    "year-end adjustment or tax return by March 15",
		})
	}

	if p.HasStatus(domain.EmploymentSoleProprietor) {
		recs = append(recs, Recommendation{
			ID:          "blue_tax_return",
			Title:       "File for blue tax return approval",
			Description: "Sole proprietors approved for the blue return get up to ¥650,000 extra deduction.",
			Urgency:     UrgencyMedium,
			Deadline:    "within 2 months of starting the business",
			RequiredDocuments: []string{
				"Notification of business commencement",
				"Application for blue tax return approval",
			},
		})
	}

	if p.HasStatus(domain.EmploymentCorporation) {
		recs = append(recs, Recommendation{
			ID:          "social_insurance_enrollment",
			Title:       "Enroll the company in social insurance",
			Description: "Corporations must enroll in health insurance and employees' pension even with a single officer.",
			Urgency:     UrgencyMedium,
			Deadline:    "within 5 days of incorporation",
		})
	}

	return recs
}

func describeAmount(b domain.BenefitResult) string {
	switch b.Frequency {
	case domain.FrequencyOnce:
		return fmt.Sprintf("¥%s once", b.TotalAmount.StringFixed(0))
	case domain.FrequencyMonthly:
		return fmt.Sprintf("¥%s a month, ¥%s in total", b.Amount.StringFixed(0), b.TotalAmount.StringFixed(0))
	default:
		return fmt.Sprintf("¥%s a year", b.Amount.StringFixed(0))
	}
}

package recommend

import (
	"testing"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestBuild_EligibleBenefitsOrderedByUrgency(t *testing.T) {
	result := calculation.NewCalculationEngine().Simulate(domain.UserProfile{
		AnnualIncome:           decimal.NewFromInt(4800000),
		EmploymentStatus:       []domain.EmploymentStatus{domain.EmploymentEmployed},
		NumberOfChildren:       1,
		ChildrenAges:           []int{0},
		IsTakingMaternityLeave: true,
	})

	recs := Build(result)

	assert.Equal(t, []string{
		"apply_birth_allowance",
		"apply_parental_leave",
		"apply_child_allowance",
		"apply_child_medical",
	}, ids(recs))

	birth := recs[0]
	assert.Equal(t, UrgencyHigh, birth.Urgency)
	assert.Equal(t, "within 2 years of birth", birth.Deadline)
	assert.NotEmpty(t, birth.RequiredDocuments)
	assert.Contains(t, birth.Description, "¥500000 once")
}

func TestBuild_DocumentsAreCopied(t *testing.T) {
	result := calculation.NewCalculationEngine().Simulate(domain.UserProfile{
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentEmployed},
		IsPregnant:       true,
	})

	recs := Build(result)
	require.NotEmpty(t, recs)
	recs[0].RequiredDocuments[0] = "changed"

	birth, _ := result.Benefit(domain.BenefitBirthAllowance)
	assert.NotEqual(t, "changed", birth.RequiredDocuments[0])
}

func TestBuild_ProfileSuggestions(t *testing.T) {
	spouseIncome := decimal.NewFromInt(800000)
	result := calculation.NewCalculationEngine().Simulate(domain.UserProfile{
		AnnualIncome:     decimal.NewFromInt(4800000),
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentEmployed, domain.EmploymentSoleProprietor},
		HasSpouse:        true,
		SpouseIncome:     &spouseIncome,
		IsPregnant:       true,
	})

	recs := Build(result)

	assert.Equal(t, []string{
		"apply_birth_allowance",
		"plan_childcare_leave",
		"blue_tax_return",
		"spouse_deduction",
	}, ids(recs))
	assert.Contains(t, recs[1].Description, "¥2808000")
}

func TestBuild_NothingEligible(t *testing.T) {
	result := calculation.NewCalculationEngine().Simulate(domain.UserProfile{
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentEmployed},
	})

	assert.Empty(t, Build(result))
}

func TestBuild_HighSpouseIncomeSkipsDeduction(t *testing.T) {
	spouseIncome := decimal.NewFromInt(3000000)
	result := calculation.NewCalculationEngine().Simulate(domain.UserProfile{
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentCorporation},
		HasSpouse:        true,
		SpouseIncome:     &spouseIncome,
	})

	assert.Equal(t, []string{"social_insurance_enrollment"}, ids(Build(result)))
}

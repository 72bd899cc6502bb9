package calculation

import (
	"testing"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func employed() []domain.EmploymentStatus {
	return []domain.EmploymentStatus{domain.EmploymentEmployed}
}

func assertDecimal(t *testing.T, expected int64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.NewFromInt(expected)),
		"expected %d, got %s %v", expected, actual.String(), msgAndArgs)
}

func TestBirthAllowance(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.UserProfile
		eligible bool
	}{
		{
			name:     "Pregnant with no children",
			profile:  domain.UserProfile{EmploymentStatus: employed(), IsPregnant: true},
			eligible: true,
		},
		{
			name:     "Has a child",
			profile:  domain.UserProfile{EmploymentStatus: employed(), NumberOfChildren: 1, ChildrenAges: []int{0}},
			eligible: true,
		},
		{
			name:     "No pregnancy and no children",
			profile:  domain.UserProfile{EmploymentStatus: employed()},
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BirthAllowance(&tt.profile)

			assert.Equal(t, domain.BenefitBirthAllowance, result.ID)
			assert.Equal(t, domain.FrequencyOnce, result.Frequency)
			assert.Equal(t, tt.eligible, result.Eligibility)
			assert.NotEmpty(t, result.Reason, "reason is always present")
			if tt.eligible {
				assertDecimal(t, 500000, result.Amount)
				assertDecimal(t, 500000, result.TotalAmount)
				assert.Equal(t, "within 2 years of birth", result.ApplicationDeadline)
				assert.NotEmpty(t, result.RequiredDocuments)
			} else {
				assert.True(t, result.Amount.IsZero())
				assert.True(t, result.TotalAmount.IsZero())
			}
		})
	}
}

func TestChildAllowance(t *testing.T) {
	tests := []struct {
		name            string
		children        int
		ages            []int
		expectedMonthly int64
		eligible        bool
	}{
		{name: "No children", children: 0, ages: nil, expectedMonthly: 0, eligible: false},
		{name: "One infant", children: 1, ages: []int{1}, expectedMonthly: 15000, eligible: true},
		{name: "Infant and schoolchild", children: 2, ages: []int{1, 4}, expectedMonthly: 25000, eligible: true},
		{name: "Third child is elevated", children: 3, ages: []int{10, 5, 1}, expectedMonthly: 50000, eligible: true},
		{name: "Third child elevated even when adult", children: 3, ages: []int{25, 20, 19}, expectedMonthly: 50000, eligible: true},
		{name: "Age three takes the lower rate", children: 1, ages: []int{3}, expectedMonthly: 10000, eligible: true},
		{name: "Fewer ages than children sums what is present", children: 3, ages: []int{1}, expectedMonthly: 15000, eligible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.UserProfile{EmploymentStatus: employed(), NumberOfChildren: tt.children, ChildrenAges: tt.ages}
			result := ChildAllowance(&profile)

			assert.Equal(t, tt.eligible, result.Eligibility)
			assert.Equal(t, domain.FrequencyMonthly, result.Frequency)
			assertDecimal(t, tt.expectedMonthly, result.Amount)
			assertDecimal(t, tt.expectedMonthly*12, result.TotalAmount)
		})
	}
}

func TestChildAllowance_IgnoresIncome(t *testing.T) {
	low := domain.UserProfile{EmploymentStatus: employed(), NumberOfChildren: 1, ChildrenAges: []int{2}}
	high := low
	high.AnnualIncome = decimal.NewFromInt(30000000)

	assert.True(t, ChildAllowance(&low).Amount.Equal(ChildAllowance(&high).Amount))
}

func TestChildAllowance_ThirdChildAdds30000(t *testing.T) {
	base := domain.UserProfile{EmploymentStatus: employed(), NumberOfChildren: 2, ChildrenAges: []int{1, 5}}
	baseAmount := ChildAllowance(&base).Amount

	for _, age := range []int{0, 2, 3, 10, 17} {
		withThird := base.Clone()
		withThird.NumberOfChildren = 3
		withThird.ChildrenAges = append(withThird.ChildrenAges, age)

		delta := ChildAllowance(&withThird).Amount.Sub(baseAmount)
		assertDecimal(t, 30000, delta, "third child aged", age)
	}
}

func TestParentalLeaveAllowance(t *testing.T) {
	t.Run("Employed on maternity leave", func(t *testing.T) {
		profile := domain.UserProfile{
			AnnualIncome:           decimal.NewFromInt(4800000),
			EmploymentStatus:       employed(),
			IsTakingMaternityLeave: true,
		}
		result := ParentalLeaveAllowance(&profile)

		assert.True(t, result.Eligibility)
		assert.Equal(t, domain.FrequencyMonthly, result.Frequency)
		assertDecimal(t, 2808000, result.TotalAmount, "1,608,000 + 1,200,000")
		assertDecimal(t, 234000, result.Amount)
		assert.Equal(t, "within 4 months of leave start", result.ApplicationDeadline)
	})

	t.Run("Paternity leave also qualifies", func(t *testing.T) {
		profile := domain.UserProfile{
			AnnualIncome:           decimal.NewFromInt(6000000),
			EmploymentStatus:       employed(),
			IsTakingPaternityLeave: true,
		}
		result := ParentalLeaveAllowance(&profile)

		assert.True(t, result.Eligibility)
		assertDecimal(t, 3510000, result.TotalAmount)
	})

	t.Run("Not on leave", func(t *testing.T) {
		profile := domain.UserProfile{AnnualIncome: decimal.NewFromInt(4800000), EmploymentStatus: employed()}
		result := ParentalLeaveAllowance(&profile)

		assert.False(t, result.Eligibility)
		assert.True(t, result.TotalAmount.IsZero())
	})

	t.Run("Sole proprietor on leave", func(t *testing.T) {
		profile := domain.UserProfile{
			AnnualIncome:           decimal.NewFromInt(4800000),
			EmploymentStatus:       []domain.EmploymentStatus{domain.EmploymentSoleProprietor},
			IsTakingMaternityLeave: true,
		}
		result := ParentalLeaveAllowance(&profile)

		assert.False(t, result.Eligibility)
		assert.True(t, result.Amount.IsZero())
	})
}

func TestUnemploymentBenefit(t *testing.T) {
	unemployed := domain.UserProfile{
		AnnualIncome:     decimal.NewFromInt(3600000),
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentUnemployed},
	}
	result := UnemploymentBenefit(&unemployed)

	assert.True(t, result.Eligibility)
	assert.Equal(t, domain.FrequencyMonthly, result.Frequency)
	assertDecimal(t, 540000, result.TotalAmount)
	assertDecimal(t, 180000, result.Amount)
	assertDecimal(t, 6000, DailyUnemploymentBenefit(&unemployed))

	working := domain.UserProfile{AnnualIncome: decimal.NewFromInt(3600000), EmploymentStatus: employed()}
	result = UnemploymentBenefit(&working)

	assert.False(t, result.Eligibility)
	assert.True(t, result.Amount.IsZero())
}

func TestChildMedicalSubsidy(t *testing.T) {
	tests := []struct {
		name     string
		children int
		ages     []int
		expected int64
		eligible bool
	}{
		{name: "No children", children: 0, expected: 0, eligible: false},
		{name: "Two minors", children: 2, ages: []int{1, 4}, expected: 60000, eligible: true},
		{name: "Only adults", children: 2, ages: []int{18, 21}, expected: 0, eligible: false},
		{name: "Mixed ages", children: 3, ages: []int{19, 17, 2}, expected: 60000, eligible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.UserProfile{EmploymentStatus: employed(), NumberOfChildren: tt.children, ChildrenAges: tt.ages}
			result := ChildMedicalSubsidy(&profile)

			assert.Equal(t, tt.eligible, result.Eligibility)
			assert.Equal(t, domain.FrequencyYearly, result.Frequency)
			assertDecimal(t, tt.expected, result.Amount)
			assertDecimal(t, tt.expected, result.TotalAmount)
		})
	}
}

func TestRules_NeverPanicOnOddInput(t *testing.T) {
	odd := domain.UserProfile{
		AnnualIncome:     decimal.NewFromInt(-1000000),
		NumberOfChildren: -2,
		ChildrenAges:     []int{-1, 40},
	}
	for _, rule := range DefaultRules() {
		assert.NotPanics(t, func() { rule(&odd) })
	}
}

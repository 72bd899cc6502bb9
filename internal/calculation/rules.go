package calculation

import (
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// Rule evaluates one catalogue benefit against a profile. Rules are pure and
// total: any profile yields a result, never an error.
type Rule func(p *domain.UserProfile) domain.BenefitResult

// DefaultRules returns the benefit rules in catalogue order
func DefaultRules() []Rule {
	return []Rule{
		BirthAllowance,
		ChildAllowance,
		ParentalLeaveAllowance,
		UnemploymentBenefit,
		ChildMedicalSubsidy,
	}
}

func mustEntry(id domain.BenefitID) domain.CatalogueEntry {
	entry, ok := domain.LookupBenefit(id)
	if !ok {
		panic("calculation: benefit missing from catalogue: " + string(id))
	}
	return entry
}

var (
	birthAllowanceAmount   = decimal.NewFromInt(500000)
	childRateThirdOrLater  = decimal.NewFromInt(30000)
	childRateUnderThree    = decimal.NewFromInt(15000)
	childRateThreeAndOlder = decimal.NewFromInt(10000)
	leaveRateFirstHalf     = decimal.NewFromFloat(0.67)
	leaveRateSecondHalf    = decimal.NewFromFloat(0.50)
	unemploymentRate       = decimal.NewFromFloat(0.6)
	unemploymentDays       = decimal.NewFromInt(90)
	medicalSavingsPerChild = decimal.NewFromInt(30000)

	six    = decimal.NewFromInt(6)
	twelve = decimal.NewFromInt(12)
	thirty = decimal.NewFromInt(30)
)

// Children at this birth position (zero-based) or later get the elevated rate.
const thirdChildIndex = 2

// Children younger than this are covered by the medical subsidy.
const medicalSubsidyAgeLimit = 18

// BirthAllowance is the lump-sum childbirth allowance.
func BirthAllowance(p *domain.UserProfile) domain.BenefitResult {
	entry := mustEntry(domain.BenefitBirthAllowance)
	if !p.IsPregnant && p.NumberOfChildren <= 0 {
		return domain.Ineligible(entry, "No pregnancy or birth is on record for this household")
	}
	return domain.BenefitResult{
		ID:                  entry.ID,
		Name:                entry.Name,
		Amount:              birthAllowanceAmount,
		Frequency:           domain.FrequencyOnce,
		TotalAmount:         birthAllowanceAmount,
		Eligibility:         true,
		Reason:              "Paid once per birth to members of public health insurance",
		ApplicationDeadline: "within 2 years of birth",
		RequiredDocuments: []string{
			"Health insurance card",
			"Maternal and child health handbook",
			"Itemised hospital bill for the delivery",
		},
	}
}

// ChildAllowance pays a monthly amount per child. Array position in
// ChildrenAges is birth order; only the ages present are summed. There is no
// income test since the October 2024 reform.
func ChildAllowance(p *domain.UserProfile) domain.BenefitResult {
	entry := mustEntry(domain.BenefitChildAllowance)
	if p.NumberOfChildren <= 0 {
		return domain.Ineligible(entry, "No children in the household")
	}

	monthlyTotal := decimal.Zero
	for i, age := range p.ChildrenAges {
		switch {
		case i >= thirdChildIndex:
			monthlyTotal = monthlyTotal.Add(childRateThirdOrLater)
		case age < 3:
			monthlyTotal = monthlyTotal.Add(childRateUnderThree)
		default:
			monthlyTotal = monthlyTotal.Add(childRateThreeAndOlder)
		}
	}

	return domain.BenefitResult{
		ID:                  entry.ID,
		Name:                entry.Name,
		Amount:              monthlyTotal,
		Frequency:           domain.FrequencyMonthly,
		TotalAmount:         monthlyTotal.Mul(twelve),
		Eligibility:         true,
		Reason:              "Paid for every child in the household with no income limit",
		ApplicationDeadline: "within 15 days of birth or moving in",
		RequiredDocuments: []string{
			"Claimant's bank account details",
			"Health insurance card",
			"My Number card",
		},
	}
}

// ParentalLeaveAllowance replaces salary during childcare leave: 67% for the
// first six months and 50% for the next six.
func ParentalLeaveAllowance(p *domain.UserProfile) domain.BenefitResult {
	entry := mustEntry(domain.BenefitParentalLeave)
	if !p.HasStatus(domain.EmploymentEmployed) {
		return domain.Ineligible(entry, "Only employees covered by employment insurance qualify")
	}
	if !p.IsOnLeave() {
		return domain.Ineligible(entry, "No maternity or paternity leave is planned")
	}

	monthlySalary := p.MonthlySalary()
	firstSixMonths := monthlySalary.Mul(leaveRateFirstHalf).Mul(six)
	nextSixMonths := monthlySalary.Mul(leaveRateSecondHalf).Mul(six)
	total := firstSixMonths.Add(nextSixMonths)

	return domain.BenefitResult{
		ID:                  entry.ID,
		Name:                entry.Name,
		Amount:              total.Div(twelve),
		Frequency:           domain.FrequencyMonthly,
		TotalAmount:         total,
		Eligibility:         true,
		Reason:              "67% of salary for the first 6 months of leave, then 50%",
		ApplicationDeadline: "within 4 months of leave start",
		RequiredDocuments: []string{
			"Childcare leave application form",
			"Wage ledger and attendance records",
			"Mother and child health handbook copy",
		},
	}
}

// UnemploymentBenefit is a flat 60% of daily wage for 90 days. No wage band
// sliding scale and no age-based extension.
func UnemploymentBenefit(p *domain.UserProfile) domain.BenefitResult {
	entry := mustEntry(domain.BenefitUnemployment)
	if !p.HasStatus(domain.EmploymentUnemployed) {
		return domain.Ineligible(entry, "Currently working, so basic unemployment allowance does not apply")
	}

	// amount is 30 days and total is 90 days of (monthly/30) * 60%
	monthlyBenefit := p.MonthlySalary().Mul(unemploymentRate)

	return domain.BenefitResult{
		ID:                  entry.ID,
		Name:                entry.Name,
		Amount:              monthlyBenefit,
		Frequency:           domain.FrequencyMonthly,
		TotalAmount:         monthlyBenefit.Mul(unemploymentDays).Div(thirty),
		Eligibility:         true,
		Reason:              "60% of daily wage paid for 90 days after leaving work",
		ApplicationDeadline: "within 1 year of leaving work",
		RequiredDocuments: []string{
			"Separation notice",
			"Employment insurance card",
			"Identity document",
			"Two ID photos",
		},
	}
}

// ChildMedicalSubsidy estimates yearly medical savings for children under 18.
// The real figure varies by municipality.
func ChildMedicalSubsidy(p *domain.UserProfile) domain.BenefitResult {
	entry := mustEntry(domain.BenefitChildMedical)
	if p.NumberOfChildren <= 0 {
		return domain.Ineligible(entry, "No children in the household")
	}

	youngChildren := 0
	for _, age := range p.ChildrenAges {
		if age < medicalSubsidyAgeLimit {
			youngChildren++
		}
	}
	if youngChildren == 0 {
		return domain.Ineligible(entry, "No children under 18")
	}

	savings := medicalSavingsPerChild.Mul(decimal.NewFromInt(int64(youngChildren)))
	return domain.BenefitResult{
		ID:          entry.ID,
		Name:        entry.Name,
		Amount:      savings,
		Frequency:   domain.FrequencyYearly,
		TotalAmount: savings,
		Eligibility: true,
		Reason:      "Estimate only; coverage and co-payments vary by municipality",
		RequiredDocuments: []string{
			"Child's health insurance card",
			"Municipal subsidy application form",
		},
	}
}

// DailyUnemploymentBenefit is the basic daily allowance the monthly figure is built from
func DailyUnemploymentBenefit(p *domain.UserProfile) decimal.Decimal {
	return p.MonthlySalary().Div(thirty).Mul(unemploymentRate)
}

package domain

import "github.com/shopspring/decimal"

func init() {
	// money is written as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// BenefitID identifies an entry of the benefit catalogue
type BenefitID string

const (
	BenefitBirthAllowance BenefitID = "birth_allowance"
	BenefitChildAllowance BenefitID = "child_allowance"
	BenefitParentalLeave  BenefitID = "parental_leave"
	BenefitUnemployment   BenefitID = "unemployment"
	BenefitChildMedical   BenefitID = "child_medical"
)

// Frequency describes how often a benefit pays out
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// CatalogueEntry is the fixed identity of a benefit
type CatalogueEntry struct {
	ID        BenefitID `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Frequency Frequency `yaml:"frequency" json:"frequency"`
}

// Catalogue lists every simulated benefit in the order results are reported
var Catalogue = []CatalogueEntry{
	{ID: BenefitBirthAllowance, Name: "出産育児一時金", Frequency: FrequencyOnce},
	{ID: BenefitChildAllowance, Name: "児童手当", Frequency: FrequencyMonthly},
	{ID: BenefitParentalLeave, Name: "育児休業給付金", Frequency: FrequencyMonthly},
	{ID: BenefitUnemployment, Name: "失業給付（基本手当）", Frequency: FrequencyMonthly},
	{ID: BenefitChildMedical, Name: "子ども医療費助成", Frequency: FrequencyYearly},
}

// LookupBenefit returns the catalogue entry for id
func LookupBenefit(id BenefitID) (CatalogueEntry, bool) {
	for _, entry := range Catalogue {
		if entry.ID == id {
			return entry, true
		}
	}
	return CatalogueEntry{}, false
}

// BenefitResult is one rule's verdict for a profile
type BenefitResult struct {
	ID                  BenefitID       `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	Amount              decimal.Decimal `yaml:"amount" json:"amount"` // per period, see Frequency
	Frequency           Frequency       `yaml:"frequency" json:"frequency"`
	TotalAmount         decimal.Decimal `yaml:"total_amount" json:"totalAmount"`
	Eligibility         bool            `yaml:"eligibility" json:"eligibility"`
	Reason              string          `yaml:"reason" json:"reason"`
	ApplicationDeadline string          `yaml:"application_deadline,omitempty" json:"applicationDeadline,omitempty"`
	RequiredDocuments   []string        `yaml:"required_documents,omitempty" json:"requiredDocuments,omitempty"`
}

// Ineligible builds a zero-amount result for entry carrying reason
func Ineligible(entry CatalogueEntry, reason string) BenefitResult {
	return BenefitResult{
		ID:          entry.ID,
		Name:        entry.Name,
		Amount:      decimal.Zero,
		Frequency:   entry.Frequency,
		TotalAmount: decimal.Zero,
		Eligibility: false,
		Reason:      reason,
	}
}

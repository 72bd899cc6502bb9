package domain

import (
	"github.com/shopspring/decimal"
)

// EmploymentStatus is one facet of a household member's working situation
type EmploymentStatus string

const (
	EmploymentEmployed       EmploymentStatus = "employed"
	EmploymentSoleProprietor EmploymentStatus = "sole_proprietor"
	EmploymentCorporation    EmploymentStatus = "corporation"
	EmploymentUnemployed     EmploymentStatus = "unemployed"
)

// Valid reports whether s is one of the known employment statuses
func (s EmploymentStatus) Valid() bool {
	switch s {
	case EmploymentEmployed, EmploymentSoleProprietor, EmploymentCorporation, EmploymentUnemployed:
		return true
	}
	return false
}

// UserProfile holds the household facts every benefit rule is evaluated against
type UserProfile struct {
	AnnualIncome     decimal.Decimal    `yaml:"annual_income" json:"annualIncome"`
	EmploymentStatus []EmploymentStatus `yaml:"employment_status" json:"employmentStatus"`
	HasSpouse        bool               `yaml:"has_spouse" json:"hasSpouse"`
	SpouseIncome     *decimal.Decimal   `yaml:"spouse_income,omitempty" json:"spouseIncome,omitempty"`
	NumberOfChildren int                `yaml:"number_of_children" json:"numberOfChildren"`
	// ChildrenAges is in birth order: the first element is the first-born child.
	ChildrenAges []int `yaml:"children_ages" json:"childrenAges"`

	IsPregnant             bool `yaml:"is_pregnant,omitempty" json:"isPregnant,omitempty"`
	IsTakingMaternityLeave bool `yaml:"is_taking_maternity_leave,omitempty" json:"isTakingMaternityLeave,omitempty"`
	IsTakingPaternityLeave bool `yaml:"is_taking_paternity_leave,omitempty" json:"isTakingPaternityLeave,omitempty"`
}

// HasStatus reports whether the profile's employment status set contains s
func (p UserProfile) HasStatus(s EmploymentStatus) bool {
	for _, status := range p.EmploymentStatus {
		if status == s {
			return true
		}
	}
	return false
}

// IsOnLeave reports whether either kind of childcare leave is being taken
func (p UserProfile) IsOnLeave() bool {
	return p.IsTakingMaternityLeave || p.IsTakingPaternityLeave
}

// MonthlySalary returns annual income spread evenly over twelve months
func (p UserProfile) MonthlySalary() decimal.Decimal {
	return p.AnnualIncome.Div(decimal.NewFromInt(12))
}

// Clone returns a deep copy so callers can edit it without touching the original
func (p UserProfile) Clone() UserProfile {
	out := p
	if p.EmploymentStatus != nil {
		out.EmploymentStatus = append([]EmploymentStatus(nil), p.EmploymentStatus...)
	}
	if p.ChildrenAges != nil {
		out.ChildrenAges = append([]int(nil), p.ChildrenAges...)
	}
	if p.SpouseIncome != nil {
		income := *p.SpouseIncome
		out.SpouseIncome = &income
	}
	return out
}

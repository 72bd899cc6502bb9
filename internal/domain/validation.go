package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidProfile is wrapped by every ValidationError
var ErrInvalidProfile = errors.New("invalid profile")

// ValidationError lists every problem found in a profile
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidProfile, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}

// Validate checks p at the boundary. The benefit rules themselves accept any
// input; this catches profiles that would produce meaningless totals.
func Validate(p *UserProfile) error {
	var problems []string

	if p.AnnualIncome.LessThan(decimal.Zero) {
		problems = append(problems, "annual income cannot be negative")
	}
	if p.SpouseIncome != nil {
		if p.SpouseIncome.LessThan(decimal.Zero) {
			problems = append(problems, "spouse income cannot be negative")
		}
		if !p.HasSpouse {
			problems = append(problems, "spouse income given without a spouse")
		}
	}

	if len(p.EmploymentStatus) == 0 {
		problems = append(problems, "employment status is required")
	}
	seen := make(map[EmploymentStatus]bool, len(p.EmploymentStatus))
	for _, s := range p.EmploymentStatus {
		if !s.Valid() {
			problems = append(problems, fmt.Sprintf("unknown employment status %q", s))
		}
		if seen[s] {
			problems = append(problems, fmt.Sprintf("employment status %q listed twice", s))
		}
		seen[s] = true
	}
	if seen[EmploymentUnemployed] && len(seen) > 1 {
		problems = append(problems, "unemployed cannot be combined with another employment status")
	}

	if p.NumberOfChildren < 0 {
		problems = append(problems, "number of children cannot be negative")
	}
	if len(p.ChildrenAges) != p.NumberOfChildren {
		problems = append(problems, fmt.Sprintf("children ages has %d entries but number of children is %d",
			len(p.ChildrenAges), p.NumberOfChildren))
	}
	for i, age := range p.ChildrenAges {
		if age < 0 {
			problems = append(problems, fmt.Sprintf("child %d has negative age %d", i+1, age))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

package transform

import (
	"fmt"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// AddChild appends a child of the given age as the youngest in birth order
type AddChild struct {
	Age int
}

func (t *AddChild) Name() string { return "add_child" }

func (t *AddChild) Description() string {
	return fmt.Sprintf("Add a child aged %d", t.Age)
}

func (t *AddChild) Validate(base domain.UserProfile) error {
	if t.Age < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("age cannot be negative, got %d", t.Age), nil)
	}
	return nil
}

func (t *AddChild) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.ChildrenAges = append(p.ChildrenAges, t.Age)
	p.NumberOfChildren = len(p.ChildrenAges)
	return p, nil
}

// RemoveYoungestChild drops the last child in birth order
type RemoveYoungestChild struct{}

func (t *RemoveYoungestChild) Name() string        { return "remove_child" }
func (t *RemoveYoungestChild) Description() string { return "Remove the youngest child" }

func (t *RemoveYoungestChild) Validate(base domain.UserProfile) error {
	if len(base.ChildrenAges) == 0 {
		return NewTransformError(t.Name(), "validate", "profile has no children", nil)
	}
	return nil
}

func (t *RemoveYoungestChild) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.ChildrenAges = p.ChildrenAges[:len(p.ChildrenAges)-1]
	p.NumberOfChildren = len(p.ChildrenAges)
	return p, nil
}

// SetPregnant sets or clears the pregnancy flag
type SetPregnant struct {
	Pregnant bool
}

func (t *SetPregnant) Name() string { return "set_pregnant" }

func (t *SetPregnant) Description() string {
	if t.Pregnant {
		return "Household is expecting a baby"
	}
	return "Household is not expecting a baby"
}

func (t *SetPregnant) Validate(domain.UserProfile) error { return nil }

func (t *SetPregnant) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.IsPregnant = t.Pregnant
	return p, nil
}

// LeaveKind distinguishes maternity from paternity leave
type LeaveKind string

const (
	LeaveMaternity LeaveKind = "maternity"
	LeavePaternity LeaveKind = "paternity"
)

// StartLeave starts maternity or paternity leave
type StartLeave struct {
	Kind LeaveKind
}

func (t *StartLeave) Name() string { return "start_leave" }

func (t *StartLeave) Description() string {
	return fmt.Sprintf("Start %s leave", t.Kind)
}

func (t *StartLeave) Validate(base domain.UserProfile) error {
	if t.Kind != LeaveMaternity && t.Kind != LeavePaternity {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("leave kind must be maternity or paternity, got %q", t.Kind), nil)
	}
	return nil
}

func (t *StartLeave) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	switch t.Kind {
	case LeaveMaternity:
		p.IsTakingMaternityLeave = true
	case LeavePaternity:
		p.IsTakingPaternityLeave = true
	}
	return p, nil
}

// LoseJob replaces every employment status with unemployed. Income is kept
// because unemployment benefits are based on the previous wage.
type LoseJob struct{}

func (t *LoseJob) Name() string        { return "lose_job" }
func (t *LoseJob) Description() string { return "Leave work and become unemployed" }

func (t *LoseJob) Validate(base domain.UserProfile) error {
	if base.HasStatus(domain.EmploymentUnemployed) {
		return NewTransformError(t.Name(), "validate", "already unemployed", nil)
	}
	return nil
}

func (t *LoseJob) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.EmploymentStatus = []domain.EmploymentStatus{domain.EmploymentUnemployed}
	p.IsTakingMaternityLeave = false
	p.IsTakingPaternityLeave = false
	return p, nil
}

// StartJob sets a single new employment status and, optionally, a new income
type StartJob struct {
	Status domain.EmploymentStatus
	Income *decimal.Decimal
}

func (t *StartJob) Name() string { return "start_job" }

func (t *StartJob) Description() string {
	if t.Income != nil {
		return fmt.Sprintf("Start working as %s earning ¥%s a year", t.Status, t.Income.StringFixed(0))
	}
	return fmt.Sprintf("Start working as %s", t.Status)
}

func (t *StartJob) Validate(base domain.UserProfile) error {
	if !t.Status.Valid() || t.Status == domain.EmploymentUnemployed {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("invalid working status %q", t.Status), nil)
	}
	if t.Income != nil && t.Income.IsNegative() {
		return NewTransformError(t.Name(), "validate", "income cannot be negative", nil)
	}
	return nil
}

func (t *StartJob) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.EmploymentStatus = []domain.EmploymentStatus{t.Status}
	if t.Income != nil {
		p.AnnualIncome = *t.Income
	}
	return p, nil
}

// SetIncome changes the gross annual income
type SetIncome struct {
	Amount decimal.Decimal
}

func (t *SetIncome) Name() string { return "set_income" }

func (t *SetIncome) Description() string {
	return fmt.Sprintf("Set annual income to ¥%s", t.Amount.StringFixed(0))
}

func (t *SetIncome) Validate(domain.UserProfile) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "income cannot be negative", nil)
	}
	return nil
}

func (t *SetIncome) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.AnnualIncome = t.Amount
	return p, nil
}

// Marry adds a spouse with the given income
type Marry struct {
	SpouseIncome decimal.Decimal
}

func (t *Marry) Name() string { return "marry" }

func (t *Marry) Description() string {
	return fmt.Sprintf("Marry a spouse earning ¥%s a year", t.SpouseIncome.StringFixed(0))
}

func (t *Marry) Validate(base domain.UserProfile) error {
	if base.HasSpouse {
		return NewTransformError(t.Name(), "validate", "profile already has a spouse", nil)
	}
	if t.SpouseIncome.IsNegative() {
		return NewTransformError(t.Name(), "validate", "spouse income cannot be negative", nil)
	}
	return nil
}

func (t *Marry) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	income := t.SpouseIncome
	p.HasSpouse = true
	p.SpouseIncome = &income
	return p, nil
}

// GiveBirth turns a pregnancy into a newborn child
type GiveBirth struct{}

func (t *GiveBirth) Name() string        { return "give_birth" }
func (t *GiveBirth) Description() string { return "The expected baby is born" }

func (t *GiveBirth) Validate(base domain.UserProfile) error { return nil }

func (t *GiveBirth) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	p.IsPregnant = false
	p.ChildrenAges = append(p.ChildrenAges, 0)
	p.NumberOfChildren = len(p.ChildrenAges)
	return p, nil
}

package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages named life-event templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ProfileTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common life events
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "pregnancy",
		Description: "Household starts expecting a baby",
		Transforms:  []ProfileTransform{&SetPregnant{Pregnant: true}},
	})

	registry.Register(Template{
		Name:        "birth",
		Description: "A baby is born and the mother takes maternity leave",
		Transforms: []ProfileTransform{
			&GiveBirth{},
			&StartLeave{Kind: LeaveMaternity},
		},
	})

	registry.Register(Template{
		Name:        "birth_with_paternity_leave",
		Description: "A baby is born and the father takes paternity leave",
		Transforms: []ProfileTransform{
			&GiveBirth{},
			&StartLeave{Kind: LeavePaternity},
		},
	})

	registry.Register(Template{
		Name:        "marriage",
		Description: "Marry a spouse with no income",
		Transforms:  []ProfileTransform{&Marry{SpouseIncome: decimal.Zero}},
	})

	registry.Register(Template{
		Name:        "job_loss",
		Description: "Leave work and claim unemployment",
		Transforms:  []ProfileTransform{&LoseJob{}},
	})

	registry.Register(Template{
		Name:        "start_business",
		Description: "Leave employment to run a sole proprietorship",
		Transforms: []ProfileTransform{
			&StartJob{Status: domain.EmploymentSoleProprietor},
		},
	})

	registry.Register(Template{
		Name:        "incorporate",
		Description: "Run the business through a corporation",
		Transforms: []ProfileTransform{
			&StartJob{Status: domain.EmploymentCorporation},
		},
	})

	registry.Register(Template{
		Name:        "child_grows_up",
		Description: "Every child is one year older",
		Transforms:  []ProfileTransform{&AgeChildren{Years: 1}},
	})

	return registry
}

// ApplyTemplate applies a template to a base profile
func ApplyTemplate(base domain.UserProfile, template Template) (domain.UserProfile, error) {
	return ApplyTransforms(base, template.Transforms)
}

// AgeChildren moves every child's age forward
type AgeChildren struct {
	Years int
}

func (t *AgeChildren) Name() string { return "age_children" }

func (t *AgeChildren) Description() string {
	return fmt.Sprintf("Every child is %d year(s) older", t.Years)
}

func (t *AgeChildren) Validate(base domain.UserProfile) error {
	if t.Years <= 0 {
		return NewTransformError(t.Name(), "validate", "years must be positive", nil)
	}
	return nil
}

func (t *AgeChildren) Apply(base domain.UserProfile) (domain.UserProfile, error) {
	p := base.Clone()
	for i := range p.ChildrenAges {
		p.ChildrenAges[i] += t.Years
	}
	return p, nil
}

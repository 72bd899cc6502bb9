package compare

import (
	"fmt"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine with the built-in templates
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// Scenario is a named profile to compare
type Scenario struct {
	Name        string
	Description string
	Profile     domain.UserProfile
}

// CompareScenarios measures every alternative against base
func (ce *CompareEngine) CompareScenarios(base Scenario, alternatives []Scenario) (*ComparisonSet, error) {
	baseResult, err := ce.CalcEngine.SimulateChecked(base.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario %s: %w", base.Name, err)
	}

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, alt := range alternatives {
		comparison, err := ce.CalcEngine.CompareChecked(base.Profile, alt.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", alt.Name, err)
		}
		altResult := comparison.Scenario2
		results = append(results, ComparisonResult{
			ScenarioName: alt.Name,
			Description:  alt.Description,
			Profile:      altResult.Profile,
			Result:       &altResult,
			Difference:   comparison.Difference,
			Deltas:       CalculateDeltas(baseResult, &altResult),
		})
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareTemplates applies each named life-event template to base and compares the outcomes
func (ce *CompareEngine) CompareTemplates(base Scenario, templateNames []string) (*ComparisonSet, error) {
	alternatives := make([]Scenario, 0, len(templateNames))
	for _, name := range templateNames {
		template, ok := ce.TemplateRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}

		modified, err := transform.ApplyTemplate(base.Profile, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", name, err)
		}
		alternatives = append(alternatives, Scenario{
			Name:        base.Name + "_" + template.Name,
			Description: template.Description,
			Profile:     modified,
		})
	}
	return ce.CompareScenarios(base, alternatives)
}

// CompareTransforms applies the transform specs in sequence and compares the single result
func (ce *CompareEngine) CompareTransforms(base Scenario, specs []string) (*ComparisonSet, error) {
	transforms, err := ce.TransformRegistry.ParseTransformSpecs(specs)
	if err != nil {
		return nil, err
	}
	modified, err := transform.ApplyTransforms(base.Profile, transforms)
	if err != nil {
		return nil, err
	}

	description := ""
	for i, t := range transforms {
		if i > 0 {
			description += "; "
		}
		description += t.Description()
	}
	return ce.CompareScenarios(base, []Scenario{{
		Name:        base.Name + "_modified",
		Description: description,
		Profile:     modified,
	}})
}

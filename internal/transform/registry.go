package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters, for the CLI
// and HTTP surfaces.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("add_child", createAddChild)
	registry.Register("remove_child", func(map[string]string) (ProfileTransform, error) {
		return &RemoveYoungestChild{}, nil
	})
	registry.Register("set_pregnant", createSetPregnant)
	registry.Register("give_birth", func(map[string]string) (ProfileTransform, error) {
		return &GiveBirth{}, nil
	})
	registry.Register("start_leave", createStartLeave)
	registry.Register("lose_job", func(map[string]string) (ProfileTransform, error) {
		return &LoseJob{}, nil
	})
	registry.Register("start_job", createStartJob)
	registry.Register("set_income", createSetIncome)
	registry.Register("marry", createMarry)
	registry.Register("age_children", createAgeChildren)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransform, name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name" or "transform_name:param1=value1,param2=value2"
// Example: "add_child:age=0"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)
	if name == "" {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name[:params]', got: %q", spec)
	}

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			k, v, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses each spec in order
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ProfileTransform, error) {
	transforms := make([]ProfileTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Factory functions for each transform

func createAddChild(params map[string]string) (ProfileTransform, error) {
	age := 0
	if s, ok := params["age"]; ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid age value: %w", err)
		}
		age = v
	}
	return &AddChild{Age: age}, nil
}

func createSetPregnant(params map[string]string) (ProfileTransform, error) {
	pregnant := true
	if s, ok := params["value"]; ok {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value: %w", err)
		}
		pregnant = v
	}
	return &SetPregnant{Pregnant: pregnant}, nil
}

func createStartLeave(params map[string]string) (ProfileTransform, error) {
	kind, ok := params["kind"]
	if !ok {
		return nil, fmt.Errorf("missing required parameter: kind")
	}
	return &StartLeave{Kind: LeaveKind(kind)}, nil
}

func createStartJob(params map[string]string) (ProfileTransform, error) {
	status, ok := params["status"]
	if !ok {
		status = string(domain.EmploymentEmployed)
	}
	t := &StartJob{Status: domain.EmploymentStatus(status)}
	if s, ok := params["income"]; ok {
		income, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid income value: %w", err)
		}
		t.Income = &income
	}
	return t, nil
}

func createSetIncome(params map[string]string) (ProfileTransform, error) {
	s, ok := params["amount"]
	if !ok {
		return nil, fmt.Errorf("missing required parameter: amount")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount value: %w", err)
	}
	return &SetIncome{Amount: amount}, nil
}

func createMarry(params map[string]string) (ProfileTransform, error) {
	income := decimal.Zero
	if s, ok := params["spouse_income"]; ok {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid spouse_income value: %w", err)
		}
		income = v
	}
	return &Marry{SpouseIncome: income}, nil
}

func createAgeChildren(params map[string]string) (ProfileTransform, error) {
	years := 1
	if s, ok := params["years"]; ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid years value: %w", err)
		}
		years = v
	}
	return &AgeChildren{Years: years}, nil
}

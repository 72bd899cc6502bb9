package calculation

import (
	"context"
	"fmt"
	"sort"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CalculationEngine runs the benefit rules and aggregates their results.
// It holds no per-call state, so one engine may serve concurrent callers.
type CalculationEngine struct {
	Rules  []Rule
	Logger Logger
	// OrderChildrenByAge sorts a copy of ChildrenAges eldest first before the
	// rules run, for callers whose ages are not already in birth order.
	OrderChildrenByAge bool
	Debug              bool
}

// NewCalculationEngine creates an engine with the default rule set
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Rules:  DefaultRules(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine's logger; nil installs a no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Simulate evaluates every rule against profile. It never fails; malformed
// profiles are computed through as-is. Use SimulateChecked at trust boundaries.
func (ce *CalculationEngine) Simulate(profile domain.UserProfile) *domain.SimulationResult {
	p := profile.Clone()
	if ce.OrderChildrenByAge {
		// rules see eldest first; the result still echoes the input order
		sort.Sort(sort.Reverse(sort.IntSlice(p.ChildrenAges)))
	}

	rules := ce.Rules
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	result := &domain.SimulationResult{
		Profile:  profile.Clone(),
		Benefits: make([]domain.BenefitResult, 0, len(rules)),
	}
	for _, rule := range rules {
		benefit := rule(&p)
		if ce.Debug {
			ce.logger().Debugf("benefit %s: eligible=%t amount=%s total=%s",
				benefit.ID, benefit.Eligibility, benefit.Amount.String(), benefit.TotalAmount.String())
		}
		result.Benefits = append(result.Benefits, benefit)
	}

	ce.aggregate(result)
	return result
}

// aggregate fills the derived totals from the eligible benefits
func (ce *CalculationEngine) aggregate(result *domain.SimulationResult) {
	oneTime := decimal.Zero
	monthly := decimal.Zero
	yearly := decimal.Zero

	for _, b := range result.Eligible() {
		switch b.Frequency {
		case domain.FrequencyOnce:
			oneTime = oneTime.Add(b.TotalAmount)
		case domain.FrequencyMonthly:
			monthly = monthly.Add(b.Amount)
		case domain.FrequencyYearly:
			yearly = yearly.Add(b.Amount)
		default:
			ce.logger().Warnf("benefit %s has unknown frequency %q, left out of totals", b.ID, b.Frequency)
		}
	}

	result.OneTimeBenefits = oneTime
	result.MonthlyBenefits = monthly
	result.YearlyBenefits = yearly
	result.TotalBenefits = oneTime.Add(monthly.Mul(twelve)).Add(yearly)
}

// SimulateChecked validates profile before simulating it
func (ce *CalculationEngine) SimulateChecked(profile domain.UserProfile) (*domain.SimulationResult, error) {
	if err := domain.Validate(&profile); err != nil {
		ce.logger().Warnf("rejecting profile: %v", err)
		return nil, err
	}
	return ce.Simulate(profile), nil
}

// Compare simulates both profiles; Difference is b's total minus a's
func (ce *CalculationEngine) Compare(a, b domain.UserProfile) *domain.Comparison {
	s1 := ce.Simulate(a)
	s2 := ce.Simulate(b)
	return &domain.Comparison{
		Scenario1:  *s1,
		Scenario2:  *s2,
		Difference: s2.TotalBenefits.Sub(s1.TotalBenefits),
	}
}

// CompareChecked validates both profiles before comparing them
func (ce *CalculationEngine) CompareChecked(a, b domain.UserProfile) (*domain.Comparison, error) {
	if err := domain.Validate(&a); err != nil {
		return nil, fmt.Errorf("scenario 1: %w", err)
	}
	if err := domain.Validate(&b); err != nil {
		return nil, fmt.Errorf("scenario 2: %w", err)
	}
	return ce.Compare(a, b), nil
}

// SimulateAll validates and simulates profiles concurrently, at most limit
// at a time (limit <= 0 means no limit). Results keep the input order. The
// first invalid profile cancels the remaining work.
func (ce *CalculationEngine) SimulateAll(ctx context.Context, profiles []domain.UserProfile, limit int) ([]*domain.SimulationResult, error) {
	results := make([]*domain.SimulationResult, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range profiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ce.SimulateChecked(profiles[i])
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ce.logger().Infof("simulated %d profiles", len(profiles))
	return results, nil
}

package compare

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool
	// Summary drops profiles and per-benefit rows, keeping totals and the
	// ids of benefits that changed.
	Summary bool
}

type scenarioSummary struct {
	Name       string             `json:"name"`
	Total      decimal.Decimal    `json:"total"`
	Difference decimal.Decimal    `json:"difference"`
	Changed    []domain.BenefitID `json:"changed"`
}

type setSummary struct {
	Base      string            `json:"base"`
	BaseTotal decimal.Decimal   `json:"baseTotal"`
	Scenarios []scenarioSummary `json:"scenarios"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var v any = compSet
	if jf.Summary {
		v = summarize(compSet)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if jf.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func summarize(compSet *ComparisonSet) setSummary {
	s := setSummary{
		Base:      compSet.BaseScenarioName,
		BaseTotal: decimal.Zero,
		Scenarios: make([]scenarioSummary, 0, len(compSet.AlternativeResults)),
	}
	if compSet.BaseResult != nil {
		s.BaseTotal = compSet.BaseResult.TotalBenefits
	}
	for _, alt := range compSet.AlternativeResults {
		sc := scenarioSummary{
			Name:       alt.ScenarioName,
			Difference: alt.Difference,
			Changed:    []domain.BenefitID{},
		}
		if alt.Result != nil {
			sc.Total = alt.Result.TotalBenefits
		}
		for _, d := range alt.Deltas {
			if d.Changed() {
				sc.Changed = append(sc.Changed, d.ID)
			}
		}
		s.Scenarios = append(s.Scenarios, sc)
	}
	return s
}

package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/recommend"
	"github.com/shopspring/decimal"
)

// Report is everything a formatter renders for one household
type Report struct {
	Title           string                     `yaml:"title,omitempty" json:"title,omitempty"`
	Result          *domain.SimulationResult   `yaml:"result" json:"result"`
	Recommendations []recommend.Recommendation `yaml:"recommendations" json:"recommendations"`
}

// NewReport builds a report for result, deriving its recommendations
func NewReport(title string, result *domain.SimulationResult) *Report {
	return &Report{
		Title:           title,
		Result:          result,
		Recommendations: recommend.Build(result),
	}
}

// Formatter renders reports in one output format
type Formatter interface {
	Name() string
	Format(reports []*Report) ([]byte, error)
}

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
	register(CSVFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(name)]
}

// FormatterNames lists the registered formatter names, sorted
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatYen formats an amount as whole yen with thousands separators
func FormatYen(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	digits := rounded.String()

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sign + "¥" + sb.String()
}

// FormatFrequency renders the per-period suffix for a frequency
func FormatFrequency(f domain.Frequency) string {
	switch f {
	case domain.FrequencyOnce:
		return "one-time"
	case domain.FrequencyMonthly:
		return "/month"
	case domain.FrequencyYearly:
		return "/year"
	default:
		return fmt.Sprintf("(%s)", f)
	}
}

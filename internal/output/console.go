package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders a human-readable benefit breakdown
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(reports []*Report) ([]byte, error) {
	var buf bytes.Buffer

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		title := report.Title
		if title == "" {
			title = "HOUSEHOLD"
		}
		r := report.Result

		fmt.Fprintln(&buf, strings.Repeat("=", 72))
		fmt.Fprintf(&buf, "BENEFIT SIMULATION: %s\n", title)
		fmt.Fprintln(&buf, strings.Repeat("=", 72))

		for _, b := range r.Benefits {
			mark := "✗"
			if b.Eligibility {
				mark = "✓"
			}
			fmt.Fprintf(&buf, "%s %s\n", mark, b.Name)
			if b.Eligibility {
				fmt.Fprintf(&buf, "    Amount:   %s %s\n", FormatYen(b.Amount), FormatFrequency(b.Frequency))
				fmt.Fprintf(&buf, "    Total:    %s\n", FormatYen(b.TotalAmount))
				if b.ApplicationDeadline != "" {
					fmt.Fprintf(&buf, "    Deadline: %s\n", b.ApplicationDeadline)
				}
			}
			fmt.Fprintf(&buf, "    %s\n", b.Reason)
		}

		fmt.Fprintln(&buf, strings.Repeat("-", 72))
		fmt.Fprintf(&buf, "One-time benefits:  %s\n", FormatYen(r.OneTimeBenefits))
		fmt.Fprintf(&buf, "Monthly benefits:   %s\n", FormatYen(r.MonthlyBenefits))
		fmt.Fprintf(&buf, "Yearly benefits:    %s\n", FormatYen(r.YearlyBenefits))
		fmt.Fprintf(&buf, "TOTAL (first year): %s\n", FormatYen(r.TotalBenefits))

		if len(report.Recommendations) > 0 {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, "RECOMMENDED ACTIONS")
			fmt.Fprintln(&buf, strings.Repeat("-", 72))
			for _, rec := range report.Recommendations {
				fmt.Fprintf(&buf, "• [%s] %s\n", rec.Urgency, rec.Title)
				if rec.Deadline != "" {
					fmt.Fprintf(&buf, "    by: %s\n", rec.Deadline)
				}
			}
		}
	}

	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per benefit plus one totals row per report
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(reports []*Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Household", "Benefit", "Name", "Eligible", "Frequency", "Amount", "TotalAmount", "Deadline"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, report := range reports {
		r := report.Result
		for _, b := range r.Benefits {
			row := []string{
				report.Title,
				string(b.ID),
				b.Name,
				strconv.FormatBool(b.Eligibility),
				string(b.Frequency),
				b.Amount.StringFixed(0),
				b.TotalAmount.StringFixed(0),
				b.ApplicationDeadline,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		total := []string{report.Title, "total", "", "", "", r.MonthlyBenefits.StringFixed(0), r.TotalBenefits.StringFixed(0), ""}
		if err := w.Write(total); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

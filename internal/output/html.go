package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter produces a standalone HTML page with benefit cards
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"yen":  FormatYen,
	"freq": FormatFrequency,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(reports []*Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, reports); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

// HTMLFormatter produces a printable weekly timesheet.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/timesheet.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("timesheet").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"hours": FormatHours,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r Report) ([]byte, error) {
	var buf bytes.Buffer
	week := ""
	if !r.WeekStart.IsZero() {
		week = dateutil.WeekLabel(r.WeekStart, r.WeekEnd)
	}
	data := struct {
		Report
		Week        string
		Lines       []ShiftLine
		Assumptions []string
	}{r, week, r.Lines(), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

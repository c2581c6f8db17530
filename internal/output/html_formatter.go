package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"whole":     FormatWholeCurrency,
	"pct":       FormatPercentage,
	"longDate":  dateutil.FormatLongDateES,
	"shortDate": dateutil.FormatShortDateES,
	"verdict":   Verdict,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(analysis *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Analysis
		Assumptions []string
	}{analysis, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
)

// MarkdownFormatter renders the report as GitHub flavored markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

//go:embed templates/report.md.tmpl
var markdownTemplateSource string

var markdownTemplate = template.Must(template.New("report.md").Funcs(template.FuncMap{
	"whole":     currency.Whole,
	"cents":     currency.Cents,
	"pct":       currency.Percent,
	"abbr":      FormatAbbreviated,
	"scenarios": func() []domain.Scenario { return domain.Scenarios[:] },
	"series": func(p *domain.ProjectionSeries, name string) ([]domain.YearSnapshot, error) {
		for _, s := range domain.Scenarios {
			if s.String() == name {
				return p.Series(s), nil
			}
		}
		return nil, fmt.Errorf("unknown scenario %q", name)
	},
}).Parse(markdownTemplateSource))

func (m MarkdownFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter converts the markdown report into a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.GFM))

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 4px 10px; }
th { background: #f3f3f3; }
blockquote { color: #a33; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(r)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownToHTML.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: fmt.Sprintf("%d Contribution Report", r.TaxYear),
		Body:  template.HTML(body.String()),
	}
	if err := htmlPage.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

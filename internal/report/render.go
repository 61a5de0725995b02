package report

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"sync"
)

//go:embed templates/report.html assets/brand.svg
var reportFS embed.FS

var (
	reportTemplate = template.Must(template.New("report.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(reportFS, "templates/report.html"))

	brandOnce sync.Once
	brandURI  template.URL
)

func brandImage() template.URL {
	brandOnce.Do(func() {
		data, err := reportFS.ReadFile("assets/brand.svg")
		if err != nil {
			return
		}
		brandURI = template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data))
	})
	return brandURI
}

// Render writes doc as a standalone HTML page with inline styles.
func Render(w io.Writer, doc *Document) error {
	if err := reportTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

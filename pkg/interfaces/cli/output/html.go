package output

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/srmorales/npi-sourcing/pkg/application/dto"
)

// templateData contains all data for rendering the HTML report
type templateData struct {
	*dto.SimulationReport
	TimelineSVG template.HTML
	GeneratedAt string
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
	"score": func(f float64) string { return fmt.Sprintf("%.3f", f) },
	"ratio": func(f float64) string { return fmt.Sprintf("%.2f", f) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Sourcing Session - {{.ProjectName}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 24px; color: #333; }
  h1 { font-size: 22px; }
  h2 { font-size: 16px; margin-top: 28px; }
  table { border-collapse: collapse; margin-top: 8px; }
  th, td { border: 1px solid #ccc; padding: 4px 10px; font-size: 13px; text-align: left; }
  th { background: #f0f0f0; }
  .implement { color: #2ca02c; font-weight: bold; }
  .wait { color: #a0a000; }
  .meta { color: #666; font-size: 12px; }
</style>
</head>
<body>
<h1>Sourcing Session: {{.ProjectName}}</h1>
<p class="meta">Seed {{.Seed}} &middot; SOP {{date .SOP}} &middot; Generated {{.GeneratedAt}}</p>

<h2>Milestones</h2>
<table>
<tr><th>Design Freeze</th><th>MCS</th><th>Pilot</th><th>SOP</th></tr>
<tr><td>{{date .DesignFreeze}}</td><td>{{date .MCS}}</td><td>{{date .Pilot}}</td><td>{{date .SOP}}</td></tr>
</table>

<h2>Supplier Pool</h2>
<table>
<tr><th>ID</th><th>Name</th><th>New</th><th>On-Time Ratio</th><th>Quotes</th></tr>
{{range .Suppliers}}<tr><td>{{.SupplierID}}</td><td>{{.Name}}</td><td>{{if .NewSupplier}}yes{{else}}no{{end}}</td><td>{{ratio .OnTimeRatio}}</td><td>{{.QuoteCount}}</td></tr>
{{end}}</table>

<h2>Quote Timeline</h2>
{{.TimelineSVG}}

<h2>Evaluations</h2>
<table>
<tr><th>Supplier</th><th>ECN</th><th>Score</th><th>Wait</th><th>Implement</th><th>Action</th></tr>
{{range .Evaluations}}<tr><td>{{.SupplierID}}</td><td>{{.ECNID}}</td><td>{{score .Score}}</td><td>{{score .Wait}}</td><td>{{score .Implement}}</td><td class="{{if eq .Action "Implement"}}implement{{else}}wait{{end}}">{{.Action}}</td></tr>
{{end}}</table>

<h2>Spend-Priority Ratings</h2>
<table>
<tr><th>Supplier</th><th>Name</th><th>Score</th><th>Rating</th></tr>
{{range .Classifications}}<tr><td>{{.SupplierID}}</td><td>{{.SupplierName}}</td><td>{{score .Score}}</td><td>{{.Rating}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// generateHTMLOutput renders the session report as a standalone HTML page
// with the quote timeline embedded as SVG.
func generateHTMLOutput(report *dto.SimulationReport, config Config) error {
	timeline := NewTimeline(report)

	data := templateData{
		SimulationReport: report,
		TimelineSVG:      template.HTML(timeline.GenerateSVG(report)),
		GeneratedAt:      time.Now().Format("2006-01-02 15:04:05"),
	}

	var page strings.Builder
	if err := reportTemplate.Execute(&page, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(page.String())
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "session_report.html")
	if err := os.WriteFile(filename, []byte(page.String()), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 Report saved to: %s\n", filename)
	}
	return nil
}

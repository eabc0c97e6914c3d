package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/nao1215/flpscan/internal/model"
)

// DefaultTopRows is the default display row limit for each ranked table.
const DefaultTopRows = 25

// HTMLWriter renders a coverage report as one self-contained HTML document:
// no external assets, no scripts, no timestamps. Rendering the same report
// twice produces byte-identical output.
type HTMLWriter struct {
	baseWriter

	// topRows is the display row limit applied to each ranked table.
	// The underlying report counts are never truncated.
	topRows int
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithTopRows sets the display row limit for the ranked tables.
func WithTopRows(n int) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.topRows = n
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		topRows:    DefaultTopRows,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the report as HTML and writes it to the output.
func (w *HTMLWriter) Write(report *model.CoverageReport) (int, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newHTMLData(report, w.topRows)); err != nil {
		return 0, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return w.output.Write(buf.Bytes())
}

// htmlData is the fully precomputed template input.
//
// Design decision: All presentation decisions (row truncation, percentage
// formatting, severity classes) are made here in Go code so the template
// contains no logic beyond loops and emptiness checks.
type htmlData struct {
	// FilePath is the resolved input file path.
	FilePath string

	// TopRows is the display row limit, shown in the table headings.
	TopRows int

	// Summary metric values.
	TotalEvents      int
	ParsedEvents     int
	UnknownEvents    int
	UnknownSubEvents int
	ParsedPct        string
	UnknownPct       string

	// UnknownClass styles the unknown top-level metric: "bad" when any
	// top-level event stayed opaque, "ok" otherwise.
	UnknownClass string

	// UnknownSubClass styles the unknown sub-event metric: "warn" when any
	// VST sub-event stayed numeric-only, "ok" otherwise.
	UnknownSubClass string

	// Ranked table rows, already truncated for display.
	TypeRows       []model.TableEntry[string]
	IDRows         []model.TableEntry[model.EventKey]
	UnknownIDRows  []model.TableEntry[int]
	UnknownSubRows []model.TableEntry[int]
}

// newHTMLData flattens a coverage report into template input.
func newHTMLData(report *model.CoverageReport, topRows int) htmlData {
	data := htmlData{
		FilePath:         report.FilePath,
		TopRows:          topRows,
		TotalEvents:      report.Summary.TotalEvents,
		ParsedEvents:     report.Summary.ParsedEvents,
		UnknownEvents:    report.Summary.UnknownEvents,
		UnknownSubEvents: report.UnknownSubEvents,
		ParsedPct:        fmt.Sprintf("%.2f", report.Summary.ParsedPct),
		UnknownPct:       fmt.Sprintf("%.2f", report.Summary.UnknownPct),
		UnknownClass:     "ok",
		UnknownSubClass:  "ok",
		TypeRows:         report.EventTypes.Top(topRows),
		IDRows:           report.EventIDs.Top(topRows),
		UnknownIDRows:    report.UnknownEventIDs.Top(topRows),
		UnknownSubRows:   report.UnknownSubEventIDs.Top(topRows),
	}

	if report.Summary.UnknownEvents > 0 {
		data.UnknownClass = "bad"
	}
	if report.UnknownSubEvents > 0 {
		data.UnknownSubClass = "warn"
	}

	return data
}

// htmlTemplate is the report document. Interpolated text is escaped by
// html/template's contextual auto-escaping.
var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>FLP Parse Report</title>
<style>
* { box-sizing: border-box; }
body {
  margin: 24px;
  font-family: "SF Pro Text", "Segoe UI", sans-serif;
  color: #1f2937;
  background: linear-gradient(180deg, #f7fafc, #eef2f7);
}
h1, h2 { margin-top: 0; }
.grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 12px;
  margin-bottom: 20px;
}
.card {
  background: #ffffff;
  border: 1px solid #dbe3ee;
  border-radius: 12px;
  padding: 14px;
  box-shadow: 0 2px 6px rgba(0, 0, 0, 0.05);
}
.metric { font-size: 28px; font-weight: 700; margin-top: 8px; }
.ok { color: #127d3e; }
.warn { color: #b54708; }
.bad { color: #b42318; }
.bar {
  width: 100%;
  height: 16px;
  border-radius: 999px;
  overflow: hidden;
  background: #e5e7eb;
  border: 1px solid #d1d5db;
}
.bar > div {
  height: 100%;
  background: linear-gradient(90deg, #16a34a, #4ade80);
}
table {
  width: 100%;
  border-collapse: collapse;
  background: #fff;
  border: 1px solid #dbe3ee;
  border-radius: 10px;
  overflow: hidden;
}
th, td { text-align: left; padding: 10px; border-bottom: 1px solid #eef2f7; }
th { background: #f8fafc; font-weight: 600; }
section { margin-bottom: 20px; }
</style>
</head>
<body>
<h1>FLP Parse Coverage Report</h1>
<p><strong>File:</strong> {{.FilePath}}</p>

<div class="grid">
  <div class="card">
    <div>Total events</div>
    <div class="metric">{{.TotalEvents}}</div>
  </div>
  <div class="card">
    <div>Parsed events</div>
    <div class="metric ok">{{.ParsedEvents}} ({{.ParsedPct}}%)</div>
  </div>
  <div class="card">
    <div>Unknown top-level events</div>
    <div class="metric {{.UnknownClass}}">{{.UnknownEvents}} ({{.UnknownPct}}%)</div>
  </div>
  <div class="card">
    <div>Unknown VST sub-events</div>
    <div class="metric {{.UnknownSubClass}}">{{.UnknownSubEvents}}</div>
  </div>
</div>

<section class="card">
  <h2>Top-level Parse Coverage</h2>
  <div class="bar"><div style="width: {{.ParsedPct}}%"></div></div>
  <p>{{.ParsedEvents}} of {{.TotalEvents}} top-level events parsed into known event types.</p>
</section>

<section>
  <h2>Top Event Types (Top {{.TopRows}})</h2>
  <table>
    <thead><tr><th>Event Type</th><th>Count</th></tr></thead>
    <tbody>
{{- range .TypeRows}}
      <tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{- else}}
      <tr><td colspan="2">No events</td></tr>
{{- end}}
    </tbody>
  </table>
</section>

<section>
  <h2>Top Event IDs (Top {{.TopRows}})</h2>
  <table>
    <thead><tr><th>ID</th><th>Name</th><th>Parsed As</th><th>Count</th></tr></thead>
    <tbody>
{{- range .IDRows}}
      <tr><td>{{.Key.ID}}</td><td>{{.Key.Name}}</td><td>{{.Key.Kind}}</td><td>{{.Count}}</td></tr>
{{- else}}
      <tr><td colspan="4">No events</td></tr>
{{- end}}
    </tbody>
  </table>
</section>

<section>
  <h2>Unknown Top-level Event IDs (Top {{.TopRows}})</h2>
  <table>
    <thead><tr><th>ID</th><th>Count</th></tr></thead>
    <tbody>
{{- range .UnknownIDRows}}
      <tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{- else}}
      <tr><td colspan="2">None</td></tr>
{{- end}}
    </tbody>
  </table>
</section>

<section>
  <h2>Unknown VST Sub-event IDs (Top {{.TopRows}})</h2>
  <table>
    <thead><tr><th>Sub-event ID</th><th>Count</th></tr></thead>
    <tbody>
{{- range .UnknownSubRows}}
      <tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{- else}}
      <tr><td colspan="2">None</td></tr>
{{- end}}
    </tbody>
  </table>
</section>
</body>
</html>
`))

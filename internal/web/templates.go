package web

import (
	"html/template"
	"io"

	"github.com/litgrid/litgrid/internal/viewer"
)

// pageData feeds the full page and the table partial. The same frozen field
// order drives the column selector, the search-field dropdown and the table.
type pageData struct {
	Title   string
	Query   string
	Field   string
	Toggles []viewer.Toggle
	Table   *viewer.Table
	// Cols is the comma-joined visible key set, carried on pager and export
	// links so unsaved toggle state survives navigation.
	Cols string
	// Page/Pages drive the pager; Prev/Next are 0 at the ends.
	Page     int
	Pages    int
	Prev     int
	Next     int
	HasChart bool
	// ChartData is a base64 PNG for the static export; the served page loads
	// /chart.png instead.
	ChartData string
	Notice    string
}

var templates = template.Must(template.New("viewer").Funcs(template.FuncMap{
	// raw passes producer-supplied markup through unescaped. Only cells
	// flagged Raw (TrustMarkup on) go through it.
	"raw": func(s string) template.HTML { return template.HTML(s) },
}).Parse(viewerTemplates))

// renderPage writes the full page.
func renderPage(w io.Writer, data *pageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}

// renderTable writes the table partial: the count display plus the table.
func renderTable(w io.Writer, data *pageData) error {
	return templates.ExecuteTemplate(w, "view", data)
}

// renderExport writes the self-contained export document.
func renderExport(w io.Writer, data *pageData) error {
	return templates.ExecuteTemplate(w, "export", data)
}

const viewerTemplates = `
{{define "cell" -}}
{{if .Href}}<a href="{{.Href}}" target="_blank" rel="noopener">{{.Text}}</a>{{else if .Raw}}{{raw .Text}}{{else}}{{.Text}}{{end}}
{{- end}}

{{define "view"}}
<div id="view">
  <p id="count">{{.Table.Count}} of {{.Table.Total}} records</p>
  <table id="grid">
    <thead>
      <tr>{{range .Table.Headers}}{{if .Visible}}<th data-key="{{.Key}}">{{.Label}}</th>{{end}}{{end}}</tr>
    </thead>
    <tbody>
      {{- if .Table.Placeholder}}
      <tr><td class="placeholder" colspan="{{.Table.Span}}">{{.Table.Placeholder}}</td></tr>
      {{- else}}
      {{- range $row := .Table.Rows}}
      <tr>{{range $ci, $cell := $row}}{{if (index $.Table.Headers $ci).Visible}}<td>{{template "cell" $cell}}</td>{{end}}{{end}}</tr>
      {{- end}}
      {{- end}}
    </tbody>
  </table>
  {{- if gt .Pages 1}}
  <nav id="pager">
    {{if .Prev}}<a href="/?q={{.Query}}&amp;field={{.Field}}&amp;cols={{.Cols}}&amp;page={{.Prev}}">&laquo; Prev</a>{{end}}
    <span>page {{.Page}} of {{.Pages}}</span>
    {{if .Next}}<a href="/?q={{.Query}}&amp;field={{.Field}}&amp;cols={{.Cols}}&amp;page={{.Next}}">Next &raquo;</a>{{end}}
  </nav>
  {{- end}}
</div>
{{end}}

{{define "styles"}}
<style>
  body { font-family: system-ui, sans-serif; margin: 1.5rem; color: #222; }
  h1 { font-size: 1.3rem; }
  table { border-collapse: collapse; width: 100%; margin-top: 0.75rem; }
  th, td { border: 1px solid #ccc; padding: 0.3rem 0.5rem; text-align: left; vertical-align: top; }
  th { background: #f0f4f5; }
  tr:nth-child(even) td { background: #fafafa; }
  td.placeholder { text-align: center; color: #777; }
  #count { color: #555; }
  #pager { margin-top: 0.5rem; }
  #pager span { color: #555; margin: 0 0.5rem; }
  #controls { display: flex; flex-wrap: wrap; gap: 1rem; align-items: end; }
  #selector label { margin-right: 0.75rem; white-space: nowrap; }
  #chart img { max-width: 100%; margin-top: 1rem; }
  .alert { background: #fde8e8; border: 1px solid #c66; padding: 0.5rem; margin: 0.5rem 0; }
  .notice { background: #e8f5e9; border: 1px solid #6a6; padding: 0.5rem; margin: 0.5rem 0; }
</style>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{template "styles"}}
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Notice}}<div class="notice" id="notice">{{.Notice}}</div>{{end}}
<form id="controls" method="get" action="/">
  <label>Search field
    <select id="field" name="field">
      <option value="">All fields</option>
      {{- range .Toggles}}
      <option value="{{.Key}}"{{if eq .Key $.Field}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </label>
  <label>Query <input id="q" type="search" name="q" value="{{.Query}}"></label>
  <label>Quick search <input id="quick" type="search" placeholder="search all fields"></label>
  <button type="submit">Apply</button>
  <a id="export" href="/export.csv?q={{.Query}}&amp;field={{.Field}}&amp;cols={{.Cols}}">Export CSV</a>
</form>
<form id="selector" method="post" action="/prefs">
  {{- range .Toggles}}
  <label><input type="checkbox" name="col" value="{{.Key}}"{{if .Checked}} checked{{end}}> {{.Label}}</label>
  {{- end}}
  <input type="hidden" id="prefs-field" name="field" value="{{.Field}}">
  <button type="submit">Save preferences</button>
</form>
{{template "view" .}}
{{if .HasChart}}<div id="chart"><img src="/chart.png" alt="publication distribution"></div>{{end}}
<script>
(function () {
  var q = document.getElementById('q');
  var quick = document.getElementById('quick');
  var field = document.getElementById('field');
  var view = document.getElementById('view');

  function refresh(query, fieldKey) {
    var cols = [];
    document.querySelectorAll('#selector input[name=col]:checked').forEach(function (c) {
      cols.push(c.value);
    });
    var params = new URLSearchParams({q: query, field: fieldKey, cols: cols.join(',')});
    document.getElementById('export').href = '/export.csv?' + params.toString();
    // Any filter or column change restarts from the first page.
    params.set('page', '1');
    fetch('/table?' + params.toString(), {headers: {'HX-Request': 'true'}})
      .then(function (r) { return r.text(); })
      .then(function (html) { view.outerHTML = html; view = document.getElementById('view'); })
      .catch(function () { /* keep the current table on a failed refresh */ });
  }

  q.addEventListener('input', function () { refresh(q.value, field.value); });
  field.addEventListener('change', function () {
    document.getElementById('prefs-field').value = field.value;
    refresh(q.value, field.value);
  });
  // The quick search is an alternate entry point into the same filter: it
  // clears the dedicated query box and re-derives state from the selector.
  quick.addEventListener('input', function () {
    q.value = '';
    refresh(quick.value, field.value);
  });
  document.querySelectorAll('#selector input[name=col]').forEach(function (c) {
    c.addEventListener('change', function () { refresh(q.value || quick.value, field.value); });
  });
})();
</script>
</body>
</html>
{{end}}

{{define "export"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{template "styles"}}
</head>
<body>
<h1>{{.Title}}</h1>
{{template "view" .}}
{{if .ChartData}}<div id="chart"><img src="data:image/png;base64,{{.ChartData}}" alt="publication distribution"></div>{{end}}
</body>
</html>
{{end}}
`

package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/litgrid/litgrid/internal/logging"
	"github.com/litgrid/litgrid/internal/prefs"
	"github.com/litgrid/litgrid/internal/viewer"
)

// sessionFor builds the request's viewer session: seeded from the cookie
// slots, then overridden by explicit query parameters. A parameter that is
// absent leaves the cookie-seeded state alone; present-but-empty is an
// explicit value (empty field = whole-table search, empty cols = all hidden).
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *viewer.Session {
	sess := s.viewer.NewSession(prefs.NewCookieStore(w, r))

	q := r.URL.Query()
	if q.Has("cols") {
		sess.Columns().SetVisibleKeys(splitCols(q.Get("cols")))
		sess.Columns().Apply(sess.Grid())
	}
	if q.Has("field") {
		sess.Search().SetField(q.Get("field"))
	}
	if q.Has("q") {
		sess.Search().SetQuery(q.Get("q"))
	}
	return sess
}

// splitCols parses the comma-separated cols parameter. An empty string is an
// explicit empty set, not nil.
func splitCols(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pageParam parses the 1-based page parameter, defaulting to the first page.
func pageParam(r *http.Request) int {
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 1 {
		return p
	}
	return 1
}

// pageDataFor assembles the template data for the session's current state,
// with the table body cut to the requested page of the configured size. The
// count display still reports the full matched set.
func (s *Server) pageDataFor(sess *viewer.Session, page int) *pageData {
	_, hasChart := viewer.SelectSeries(s.viewer.Summary())
	data := &pageData{
		Title:    s.viewer.Title(),
		Query:    sess.Search().Query(),
		Field:    sess.Search().Field(),
		Toggles:  sess.Columns().Toggles(),
		Table:    sess.View(),
		Cols:     strings.Join(sess.Columns().VisibleKeys(), ","),
		HasChart: hasChart,
	}
	data.paginate(page, s.viewer.PageSize())
	return data
}

// paginate cuts the table rows to one page and fills the pager fields. An
// out-of-range page clamps rather than 404s, so a filter that shrinks the
// match set keeps a stale page link usable.
func (d *pageData) paginate(page, size int) {
	d.Page, d.Pages = 1, 1
	n := len(d.Table.Rows)
	if size <= 0 || n == 0 {
		return
	}

	d.Pages = (n + size - 1) / size
	if page > d.Pages {
		page = d.Pages
	}
	d.Page = page

	start := (page - 1) * size
	end := start + size
	if end > n {
		end = n
	}
	d.Table.Rows = d.Table.Rows[start:end]

	if page > 1 {
		d.Prev = page - 1
	}
	if page < d.Pages {
		d.Next = page + 1
	}
}

// handleIndex serves the full page, or just the table partial for an HX
// refresh of the same URL.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	data := s.pageDataFor(sess, pageParam(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var err error
	if isHTMX(r) {
		err = renderTable(w, data)
	} else {
		err = renderPage(w, data)
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("rendering page", "error", err)
	}
}

// handleTable serves the table partial: count display plus table, filtered
// and column-restricted by the query parameters.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderTable(w, s.pageDataFor(sess, pageParam(r))); err != nil {
		logging.FromContext(r.Context()).Error("rendering table", "error", err)
	}
}

// handleChart serves the selected aggregation series as a PNG. When neither
// candidate series has data there is no chart at all, 404 rather than an
// empty image.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	surface := s.newChartSurface()
	ctrl := viewer.NewChartController(surface)
	if err := ctrl.Render(s.viewer.Summary()); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	data := surface.Bytes()
	if data == nil {
		writeError(w, r, http.StatusNotFound, "no aggregation series to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		logging.FromContext(r.Context()).Error("writing chart", "error", err)
	}
}

// handleSavePrefs is the explicit save action: it persists the submitted
// column set and search field to the two cookie slots. Nothing else writes
// preferences. A failed write surfaces as an alert, not a broken page.
func (s *Server) handleSavePrefs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "parsing preference form: "+err.Error())
		return
	}

	cols := r.PostForm["col"]
	if cols == nil {
		// No boxes checked still saves an explicit empty set.
		cols = []string{}
	}
	field := r.PostForm.Get("field")

	sess := s.viewer.NewSession(prefs.NewCookieStore(w, r))
	sess.Columns().SetVisibleKeys(cols)
	sess.Search().SetField(field)
	if err := sess.SavePreferences(); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	logging.FromContext(r.Context()).Info("preferences saved",
		"visible_columns", sess.Columns().VisibleKeys(), "search_field", field)

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<div class="notice" id="notice">Preferences saved.</div>`))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

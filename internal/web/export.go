package web

import (
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/litgrid/litgrid/internal/chart"
	"github.com/litgrid/litgrid/internal/logging"
	"github.com/litgrid/litgrid/internal/prefs"
	"github.com/litgrid/litgrid/internal/viewer"
)

// csvFlushInterval is how many rows to buffer before flushing to the client.
const csvFlushInterval = 500

// newChartSurface builds the PNG surface chart renders draw on.
func (s *Server) newChartSurface() *chart.PNG {
	return chart.NewPNG(0, 0)
}

// handleExportCSV streams the current view as CSV: the rows matching the
// active filters, restricted to the visible columns, headed by the field
// keys so the file round-trips through the CSV reader.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="litgrid-export.csv"`)

	if err := writeViewCSV(w, sess); err != nil {
		// Headers are gone; all we can do is log and stop the stream.
		logging.FromContext(r.Context()).Error("streaming csv export", "error", err)
	}
}

// writeViewCSV writes the session's filtered, visible view as CSV.
func writeViewCSV(w io.Writer, sess *viewer.Session) error {
	keys := sess.Columns().VisibleKeys()
	if len(keys) == 0 {
		// An all-hidden view exports an empty document rather than failing.
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(keys); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(keys))
	for i, rec := range sess.Grid().Matched() {
		for ci, k := range keys {
			row[ci] = rec.Get(k)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		if (i+1)%csvFlushInterval == 0 {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("flushing rows: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatic renders the one-shot export document: a self-contained HTML
// page with the table, the count display and the selected chart embedded as
// a base64 PNG. Preferences seed visibility and search field the same way a
// served session would; a missing chart simply omits the chart block.
func WriteStatic(w io.Writer, v *viewer.Viewer, store prefs.Store) error {
	sess := v.NewSession(store)

	data := &pageData{
		Title:   v.Title(),
		Query:   sess.Search().Query(),
		Field:   sess.Search().Field(),
		Toggles: sess.Columns().Toggles(),
		Table:   sess.View(),
	}

	surface := chart.NewPNG(0, 0)
	ctrl := viewer.NewChartController(surface)
	if err := ctrl.Render(v.Summary()); err != nil {
		// The table is still worth exporting without its chart.
		slog.Warn("rendering export chart", "error", err)
	} else if png := surface.Bytes(); png != nil {
		data.ChartData = base64.StdEncoding.EncodeToString(png)
	}

	if err := renderExport(w, data); err != nil {
		return fmt.Errorf("rendering export document: %w", err)
	}
	return nil
}

package tui

import (
	"log/slog"

	"github.com/litgrid/litgrid/internal/chart"
	"github.com/litgrid/litgrid/internal/viewer"
)

// chartPanel owns the terminal chart surface and its controller, so toggling
// the panel re-renders through the dispose-before-render discipline instead
// of stacking drawings.
type chartPanel struct {
	surface *chart.Term
	ctrl    *viewer.ChartController
	visible bool
}

func newChartPanel(width int) *chartPanel {
	s := chart.NewTerm(width)
	return &chartPanel{surface: s, ctrl: viewer.NewChartController(s)}
}

// toggle shows or hides the panel, rendering the selected series on show.
// With nothing to chart the panel stays hidden entirely.
func (c *chartPanel) toggle(v *viewer.Viewer) {
	if c.visible {
		c.visible = false
		return
	}
	if err := c.ctrl.Render(v.Summary()); err != nil {
		slog.Warn("rendering terminal chart", "error", err)
		return
	}
	c.visible = c.surface.View() != ""
}

// resize re-renders at the new width when the panel is showing.
func (c *chartPanel) resize(width int, v *viewer.Viewer) {
	c.surface.SetWidth(width)
	if c.visible {
		if err := c.ctrl.Render(v.Summary()); err != nil {
			slog.Warn("rendering terminal chart", "error", err)
			c.visible = false
		}
	}
}

// view returns the panel body, "" while hidden.
func (c *chartPanel) view() string {
	if !c.visible {
		return ""
	}
	return c.surface.View()
}

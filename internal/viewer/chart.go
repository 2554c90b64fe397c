package viewer

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/litgrid/litgrid/internal/chart"
	"github.com/litgrid/litgrid/internal/record"
)

const unknownTimeField = "unknown time field"

// SelectSeries picks the series the chart renders: the fine-grained time
// buckets when non-empty, else the yearly buckets when non-empty, else
// nothing, in which case the chart surface hides entirely. The returned
// series carries its display title.
func SelectSeries(sum *record.Summary) (record.Series, bool) {
	if sum == nil {
		return record.Series{}, false
	}
	if !sum.Time.Empty() {
		s := sum.Time
		field := sum.TimeField
		if field == "" {
			field = unknownTimeField
		}
		s.Title = fmt.Sprintf("Publications over time (%s)", field)
		return s, true
	}
	if !sum.Years.Empty() {
		s := sum.Years
		s.Title = "Publications by year"
		return s, true
	}
	return record.Series{}, false
}

// ChartController owns one chart surface. It is the only component with an
// explicit teardown discipline: the previous instance is always disposed
// before a new render, so repeated renders never stack overlays or leak
// drawing resources. Each live render carries a fresh instance id.
type ChartController struct {
	surface chart.Surface
	current uuid.UUID
	log     *slog.Logger
}

// NewChartController wraps a surface.
func NewChartController(s chart.Surface) *ChartController {
	return &ChartController{surface: s, log: slog.Default()}
}

// Render selects from the summary and draws it. With nothing to chart the
// surface is hidden, which is distinct from rendering an empty chart. A
// surface render failure hides the surface and is returned for the caller
// to log; it is never fatal to the hosting surface.
func (c *ChartController) Render(sum *record.Summary) error {
	c.disposeCurrent()

	series, ok := SelectSeries(sum)
	if !ok {
		c.surface.Hide()
		return nil
	}
	if err := c.surface.Render(series); err != nil {
		c.surface.Hide()
		return fmt.Errorf("rendering chart: %w", err)
	}
	c.current = uuid.New()
	return nil
}

// InstanceID identifies the live render, uuid.Nil when nothing is rendered.
func (c *ChartController) InstanceID() uuid.UUID { return c.current }

func (c *ChartController) disposeCurrent() {
	if c.current != uuid.Nil {
		c.surface.Dispose()
		c.current = uuid.Nil
	}
}

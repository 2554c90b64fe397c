// Package chart provides the chart collaborator implementations behind the
// viewer's aggregation chart: a PNG bar chart for the web and export
// surfaces and a unicode bar panel for the terminal. The viewer drives them
// through Surface and owns the dispose-before-rerender discipline.
package chart

import "github.com/litgrid/litgrid/internal/record"

// Surface is the chart collaborator contract: render a single bar series
// with a title, support hiding the surface entirely (distinct from drawing
// an empty chart), and release the previous drawing on Dispose.
type Surface interface {
	Render(s record.Series) error
	Hide()
	Dispose()
}

package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/litgrid/litgrid/internal/record"
)

const (
	defaultPNGWidth  = 960
	defaultPNGHeight = 320
)

var (
	barFill   = drawing.Color{R: 75, G: 192, B: 192, A: 255}
	barStroke = drawing.Color{R: 54, G: 140, B: 140, A: 255}
)

// PNG renders the selected series as a bar-chart image. Render replaces the
// previous image; Bytes hands out the current one, nil after Hide or
// Dispose.
type PNG struct {
	width  int
	height int
	data   []byte
}

// NewPNG returns a PNG surface. Non-positive dimensions fall back to
// defaults.
func NewPNG(width, height int) *PNG {
	if width <= 0 {
		width = defaultPNGWidth
	}
	if height <= 0 {
		height = defaultPNGHeight
	}
	return &PNG{width: width, height: height}
}

// Render draws the series as one bar per bucket.
func (p *PNG) Render(s record.Series) error {
	if s.Empty() {
		return fmt.Errorf("rendering chart: empty series")
	}

	style := gochart.Style{
		FillColor:   barFill,
		StrokeColor: barStroke,
		StrokeWidth: 1,
	}
	bars := make([]gochart.Value, s.Len())
	for i, label := range s.Labels {
		bars[i] = gochart.Value{
			Label: label,
			Value: float64(s.Counts[i]),
			Style: style,
		}
	}

	bc := gochart.BarChart{
		Title:    s.Title,
		Width:    p.width,
		Height:   p.height,
		BarWidth: barWidthFor(p.width, len(bars)),
		Bars:     bars,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis: gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{ValueFormatter: gochart.IntValueFormatter},
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	p.data = buf.Bytes()
	return nil
}

// barWidthFor keeps many buckets from overflowing the canvas.
func barWidthFor(canvasWidth, bars int) int {
	if bars == 0 {
		return 40
	}
	w := (canvasWidth - 80) / bars
	if w > 40 {
		return 40
	}
	if w < 4 {
		return 4
	}
	return w
}

// Bytes returns the current image, nil when nothing is rendered.
func (p *PNG) Bytes() []byte { return p.data }

// Hide removes the image so the surface shows nothing.
func (p *PNG) Hide() { p.data = nil }

// Dispose releases the current image.
func (p *PNG) Dispose() { p.data = nil }

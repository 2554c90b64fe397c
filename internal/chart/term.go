package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/litgrid/litgrid/internal/record"
)

const (
	minTermWidth  = 24
	maxLabelWidth = 16
)

var (
	termTitleStyle = lipgloss.NewStyle().Bold(true)
	termBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	termCountStyle = lipgloss.NewStyle().Faint(true)
)

// Term renders the selected series as horizontal unicode bars sized to the
// terminal width. View returns the current panel, empty after Hide or
// Dispose.
type Term struct {
	width int
	view  string
}

// NewTerm returns a terminal surface for the given width.
func NewTerm(width int) *Term {
	if width < minTermWidth {
		width = minTermWidth
	}
	return &Term{width: width}
}

// SetWidth adjusts the render width for subsequent Renders.
func (t *Term) SetWidth(width int) {
	if width >= minTermWidth {
		t.width = width
	}
}

// Render draws one bar line per bucket, labels left, counts right.
func (t *Term) Render(s record.Series) error {
	if s.Empty() {
		return fmt.Errorf("rendering chart: empty series")
	}

	maxCount := 0
	labelW := 0
	for i, label := range s.Labels {
		if s.Counts[i] > maxCount {
			maxCount = s.Counts[i]
		}
		if w := runewidth.StringWidth(label); w > labelW {
			labelW = w
		}
	}
	if labelW > maxLabelWidth {
		labelW = maxLabelWidth
	}
	countW := len(fmt.Sprint(maxCount))
	barSpace := t.width - labelW - countW - 3
	if barSpace < 1 {
		barSpace = 1
	}

	lines := make([]string, 0, s.Len()+1)
	if s.Title != "" {
		lines = append(lines, termTitleStyle.Render(s.Title))
	}
	for i, label := range s.Labels {
		count := s.Counts[i]
		barLen := 0
		if maxCount > 0 {
			barLen = count * barSpace / maxCount
		}
		if count > 0 && barLen == 0 {
			barLen = 1
		}
		label = runewidth.Truncate(label, labelW, "…")
		lines = append(lines, fmt.Sprintf("%s %s %s",
			runewidth.FillRight(label, labelW),
			termBarStyle.Render(strings.Repeat("█", barLen)),
			termCountStyle.Render(fmt.Sprintf("%*d", countW, count)),
		))
	}
	t.view = strings.Join(lines, "\n")
	return nil
}

// View returns the rendered panel, "" when nothing is rendered.
func (t *Term) View() string { return t.view }

// Hide removes the panel so the surface shows nothing.
func (t *Term) Hide() { t.view = "" }

// Dispose releases the current panel.
func (t *Term) Dispose() { t.view = "" }

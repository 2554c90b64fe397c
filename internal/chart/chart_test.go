package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/litgrid/litgrid/internal/record"
)

func sampleSeries() record.Series {
	var s record.Series
	s.Title = "Publications by year"
	s.Add("2019", 1)
	s.Add("2020", 4)
	s.Add("2021", 2)
	return s
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestPNGRender(t *testing.T) {
	p := NewPNG(0, 0)
	if p.Bytes() != nil {
		t.Fatal("fresh surface has bytes")
	}
	if err := p.Render(sampleSeries()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	data := p.Bytes()
	if len(data) == 0 {
		t.Fatal("Render produced no bytes")
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("output does not start with PNG signature: % x", data[:8])
	}
}

func TestPNGRejectsEmptySeries(t *testing.T) {
	p := NewPNG(400, 200)
	if err := p.Render(record.Series{}); err == nil {
		t.Error("Render accepted an empty series")
	}
	if p.Bytes() != nil {
		t.Error("failed Render left bytes behind")
	}
}

func TestPNGHideAndDispose(t *testing.T) {
	p := NewPNG(400, 200)
	if err := p.Render(sampleSeries()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	p.Hide()
	if p.Bytes() != nil {
		t.Error("Bytes() non-nil after Hide")
	}
	if err := p.Render(sampleSeries()); err != nil {
		t.Fatalf("Render after Hide: %v", err)
	}
	p.Dispose()
	if p.Bytes() != nil {
		t.Error("Bytes() non-nil after Dispose")
	}
}

func TestBarWidthFor(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		bars   int
		want   int
	}{
		{"few bars capped", 960, 3, 40},
		{"many bars shrink", 960, 100, 8},
		{"floor at four", 960, 500, 4},
		{"zero bars default", 960, 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barWidthFor(tt.width, tt.bars); got != tt.want {
				t.Errorf("barWidthFor(%d, %d) = %d, want %d", tt.width, tt.bars, got, tt.want)
			}
		})
	}
}

func TestTermRender(t *testing.T) {
	tr := NewTerm(60)
	if err := tr.Render(sampleSeries()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	view := tr.View()
	if view == "" {
		t.Fatal("View() empty after Render")
	}
	if !strings.Contains(view, "Publications by year") {
		t.Error("title missing from view")
	}
	for _, want := range []string{"2019", "2020", "2021"} {
		if !strings.Contains(view, want) {
			t.Errorf("label %q missing from view", want)
		}
	}

	// The largest bucket draws the longest bar.
	lines := strings.Split(view, "\n")
	barLen := func(line string) int { return strings.Count(line, "█") }
	var l2019, l2020 int
	for _, line := range lines {
		if strings.Contains(line, "2019") {
			l2019 = barLen(line)
		}
		if strings.Contains(line, "2020") {
			l2020 = barLen(line)
		}
	}
	if l2020 <= l2019 {
		t.Errorf("bar lengths not proportional: 2020=%d, 2019=%d", l2020, l2019)
	}
}

func TestTermNonZeroCountsAlwaysVisible(t *testing.T) {
	var s record.Series
	s.Add("big", 1000)
	s.Add("tiny", 1)
	tr := NewTerm(40)
	if err := tr.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, line := range strings.Split(tr.View(), "\n") {
		if strings.Contains(line, "tiny") && !strings.Contains(line, "█") {
			t.Error("non-zero bucket rendered without a bar")
		}
	}
}

func TestTermHideAndDispose(t *testing.T) {
	tr := NewTerm(60)
	if err := tr.Render(sampleSeries()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	tr.Hide()
	if tr.View() != "" {
		t.Error("View() non-empty after Hide")
	}
	if err := tr.Render(sampleSeries()); err != nil {
		t.Fatalf("Render after Hide: %v", err)
	}
	tr.Dispose()
	if tr.View() != "" {
		t.Error("View() non-empty after Dispose")
	}
}

func TestTermRejectsEmptySeries(t *testing.T) {
	if err := NewTerm(60).Render(record.Series{}); err == nil {
		t.Error("Render accepted an empty series")
	}
}

package viewer

import (
	"strings"
	"testing"

	"github.com/litgrid/litgrid/internal/record"
)

func TestViewHeadersFollowFrozenOrder(t *testing.T) {
	v := New(sample(), nil, Config{})
	tbl := v.NewSession(nil).View()

	wantKeys := []string{"title", "journal", "year", "pmid"}
	if len(tbl.Headers) != len(wantKeys) {
		t.Fatalf("headers = %d, want %d", len(tbl.Headers), len(wantKeys))
	}
	for i, h := range tbl.Headers {
		if h.Key != wantKeys[i] {
			t.Errorf("header[%d].Key = %q, want %q", i, h.Key, wantKeys[i])
		}
		if h.Label == "" {
			t.Errorf("header[%d] has no label", i)
		}
		if !h.Visible {
			t.Errorf("header[%d] hidden without defaults", i)
		}
	}
	if tbl.Count != 2 || tbl.Total != 2 {
		t.Errorf("Count/Total = %d/%d", tbl.Count, tbl.Total)
	}
}

func TestViewEmptySchema(t *testing.T) {
	v := New(nil, nil, Config{})
	tbl := v.NewSession(nil).View()

	if len(tbl.Headers) != 1 || tbl.Headers[0].Label != "No data" {
		t.Fatalf("headers = %+v, want single placeholder", tbl.Headers)
	}
	if tbl.Placeholder == "" {
		t.Error("no placeholder row for the empty collection")
	}
	if tbl.Rows != nil {
		t.Error("body rendered with zero columns")
	}
	if tbl.Count != 0 {
		t.Errorf("Count = %d, want 0", tbl.Count)
	}
	if tbl.Span() != 1 {
		t.Errorf("Span() = %d, want minimum 1", tbl.Span())
	}
}

func TestViewFilteredToNothing(t *testing.T) {
	v := New(sample(), nil, Config{})
	sess := v.NewSession(nil)
	sess.Search().SetQuery("no such thing anywhere")

	tbl := sess.View()
	if tbl.Placeholder == "" {
		t.Error("fully filtered-out view has no placeholder")
	}
	if tbl.Count != 0 || tbl.Total != 2 {
		t.Errorf("Count/Total = %d/%d, want 0/2", tbl.Count, tbl.Total)
	}
	// The span covers the visible columns.
	if tbl.Span() != 4 {
		t.Errorf("Span() = %d, want 4", tbl.Span())
	}
}

func TestBuildCellHyperlinks(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		wantHref string
		wantText string
	}{
		// The three identifier-like fields become links when non-empty
		{"pmid", "pmid", "12345", "https://pubmed.ncbi.nlm.nih.gov/12345", "12345"},
		{"pmid uppercase key", "PMID", "12345", "https://pubmed.ncbi.nlm.nih.gov/12345", "12345"},
		{"doi", "doi", "10.1000/xyz", "https://doi.org/10.1000/xyz", "10.1000/xyz"},
		{"url uses fixed anchor text", "url", "https://example.org/a", "https://example.org/a", "Link"},

		// Empty values render as empty text, never as links
		{"empty pmid", "pmid", "", "", ""},
		{"empty doi", "doi", "", "", ""},
		{"empty url", "url", "", "", ""},

		// Everything else passes through
		{"plain field", "title", "Sleep", "", "Sleep"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record.New()
			r.Set(tt.key, tt.value)
			got := buildCell(tt.key, r, false)
			if got.Href != tt.wantHref || got.Text != tt.wantText {
				t.Errorf("buildCell(%s=%q) = {%q %q}, want {%q %q}",
					tt.key, tt.value, got.Text, got.Href, tt.wantText, tt.wantHref)
			}
		})
	}
}

func TestCellTrustMarkup(t *testing.T) {
	r := record.New()
	r.Set("abstract", "<em>significant</em>")

	if c := buildCell("abstract", r, false); c.Raw {
		t.Error("cell marked raw without trust")
	}
	if c := buildCell("abstract", r, true); !c.Raw {
		t.Error("cell not marked raw with trust enabled")
	}
	// Hyperlink cells are built by the pipeline itself and never raw.
	r.Set("pmid", "1")
	if c := buildCell("pmid", r, true); c.Raw {
		t.Error("hyperlink cell marked raw")
	}
}

func TestViewMissingFieldsRenderEmpty(t *testing.T) {
	records := record.Collection{
		rec("title", "A", "journal", "Nature"),
		rec("title", "B", "extra", "note"),
	}
	v := New(records, nil, Config{})
	tbl := v.NewSession(nil).View()

	// Field order: title, journal, extra. Record B lacks journal.
	if got := tbl.Rows[1][1].Text; got != "" {
		t.Errorf("absent field rendered %q, want empty", got)
	}
	if got := tbl.Rows[0][2].Text; got != "" {
		t.Errorf("absent field rendered %q, want empty", got)
	}
}

func TestViewHiddenColumnsStillCarryCells(t *testing.T) {
	// Rows keep one cell per field in frozen order; visibility is a header
	// attribute the surface applies. This keeps cell indexes aligned with
	// the field order no matter the visible set.
	v := New(sample(), nil, Config{DefaultVisibleColumns: []string{"title"}})
	tbl := v.NewSession(nil).View()

	if len(tbl.Rows[0]) != 4 {
		t.Errorf("row width = %d, want all 4 fields", len(tbl.Rows[0]))
	}
	visible := 0
	for _, h := range tbl.Headers {
		if h.Visible {
			visible++
		}
	}
	if visible != 1 {
		t.Errorf("visible headers = %d, want 1", visible)
	}
	if tbl.Span() != 1 {
		t.Errorf("Span() = %d, want 1", tbl.Span())
	}
}

func TestPlaceholderText(t *testing.T) {
	v := New(nil, nil, Config{})
	tbl := v.NewSession(nil).View()
	if !strings.Contains(tbl.Placeholder, "No records") {
		t.Errorf("Placeholder = %q", tbl.Placeholder)
	}
}

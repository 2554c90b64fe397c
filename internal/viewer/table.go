package viewer

import (
	"strings"

	"github.com/litgrid/litgrid/internal/record"
)

const (
	pubmedURLBase = "https://pubmed.ncbi.nlm.nih.gov/"
	doiURLBase    = "https://doi.org/"
	// linkText is the fixed anchor text for url cells; the raw link would
	// dwarf the column.
	linkText = "Link"

	placeholderHeader = "No data"
	placeholderRow    = "No records to display."
)

// Cell is one rendered table cell. Href non-empty makes it a hyperlink with
// Text as the anchor text. Raw marks producer-supplied markup that the web
// surface may pass through unescaped when configured to trust it.
type Cell struct {
	Text string
	Href string
	Raw  bool
}

// Header is one header cell in frozen field order. Surfaces skip entries
// with Visible false.
type Header struct {
	Key     string
	Label   string
	Visible bool
}

// Table is the rendered header/body model a surface draws from. When
// Placeholder is non-empty the body is a single full-width row carrying
// that text instead of Rows.
type Table struct {
	Headers     []Header
	Rows        [][]Cell
	Placeholder string
	// Count is the number of rows matching the active filters; the count
	// display collaborator shows it. Zero whenever Placeholder is set.
	Count int
	// Total is the unfiltered collection size.
	Total int
}

// Span is the column count a full-width placeholder row spans: the visible
// columns, at least one.
func (t *Table) Span() int {
	n := 0
	for _, h := range t.Headers {
		if h.Visible {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// View renders the session's current table: headers in frozen field order
// with the session's visibility, body rows filtered by the grid. An empty
// field sequence renders a single placeholder header and no body; an empty
// (or fully filtered-out) collection renders the placeholder row.
func (s *Session) View() *Table {
	fields := s.viewer.fields
	if len(fields) == 0 {
		return &Table{
			Headers:     []Header{{Label: placeholderHeader, Visible: true}},
			Placeholder: placeholderRow,
			Total:       s.grid.TotalRows(),
		}
	}

	t := &Table{
		Headers: make([]Header, len(fields)),
		Count:   s.grid.RowCount(),
		Total:   s.grid.TotalRows(),
	}
	for i, f := range fields {
		t.Headers[i] = Header{Key: f.Key, Label: f.Label, Visible: s.cols.Visible(f.Key)}
	}

	matched := s.grid.Matched()
	if len(matched) == 0 {
		t.Placeholder = placeholderRow
		t.Count = 0
		return t
	}

	trust := s.viewer.cfg.TrustMarkup
	t.Rows = make([][]Cell, len(matched))
	for ri, rec := range matched {
		cells := make([]Cell, len(fields))
		for ci, f := range fields {
			cells[ci] = buildCell(f.Key, rec, trust)
		}
		t.Rows[ri] = cells
	}
	return t
}

// buildCell formats one cell. Three identifier-like fields, matched
// case-insensitively, become hyperlinks when non-empty: pmid to its PubMed
// page, doi through the DOI resolver, url with the value itself as the
// target. Everything else carries the value untouched.
func buildCell(key string, rec *record.Record, trust bool) Cell {
	v := rec.Get(key)
	switch strings.ToLower(key) {
	case "pmid":
		if v != "" {
			return Cell{Text: v, Href: pubmedURLBase + v}
		}
	case "doi":
		if v != "" {
			return Cell{Text: v, Href: doiURLBase + v}
		}
	case "url":
		if v != "" {
			return Cell{Text: linkText, Href: v}
		}
	}
	return Cell{Text: v, Raw: trust}
}

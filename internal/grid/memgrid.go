package grid

import (
	"fmt"
	"strings"

	"github.com/litgrid/litgrid/internal/record"
)

// Mem is the in-memory Grid implementation. It materializes nothing: rows
// stay the loaded records, and filtering recomputes a matched index slice on
// every mutation, which is cheap at the collection sizes this tool handles.
//
// Matching is case-insensitive substring containment. The whole-table filter
// consults visible columns only; a per-column filter applies whether or not
// its column is currently shown, since the search-field dropdown offers every
// field, not just the visible ones.
type Mem struct {
	fields  []string
	rows    record.Collection
	visible []bool
	global  string
	column  []string
	matched []int
}

// NewMem builds a grid over the frozen field order and record collection.
// All columns start visible and all rows matched.
func NewMem(fields []string, rows record.Collection) *Mem {
	m := &Mem{
		fields:  fields,
		rows:    rows,
		visible: make([]bool, len(fields)),
		column:  make([]string, len(fields)),
	}
	for i := range m.visible {
		m.visible[i] = true
	}
	m.recompute()
	return m
}

func (m *Mem) checkCol(col int) error {
	if col < 0 || col >= len(m.fields) {
		return fmt.Errorf("%w: %d of %d", ErrColumnRange, col, len(m.fields))
	}
	return nil
}

// ColumnCount returns the total number of columns.
func (m *Mem) ColumnCount() int { return len(m.fields) }

// RowCount returns the number of rows matching the active filters.
func (m *Mem) RowCount() int { return len(m.matched) }

// TotalRows returns the unfiltered row count.
func (m *Mem) TotalRows() int { return len(m.rows) }

// SetColumnVisible shows or hides a column and refilters, since the
// whole-table search only consults visible columns.
func (m *Mem) SetColumnVisible(col int, visible bool) error {
	if err := m.checkCol(col); err != nil {
		return err
	}
	m.visible[col] = visible
	m.recompute()
	return nil
}

// ColumnVisible reports a column's visibility.
func (m *Mem) ColumnVisible(col int) (bool, error) {
	if err := m.checkCol(col); err != nil {
		return false, err
	}
	return m.visible[col], nil
}

// Search applies the whole-table filter.
func (m *Mem) Search(query string) {
	m.global = query
	m.recompute()
}

// SearchColumn applies a single-column filter.
func (m *Mem) SearchColumn(col int, query string) error {
	if err := m.checkCol(col); err != nil {
		return err
	}
	m.column[col] = query
	m.recompute()
	return nil
}

// ClearColumnSearches drops all per-column filters.
func (m *Mem) ClearColumnSearches() {
	for i := range m.column {
		m.column[i] = ""
	}
	m.recompute()
}

// Matched returns the rows matching the active filters, in load order.
func (m *Mem) Matched() record.Collection {
	out := make(record.Collection, 0, len(m.matched))
	for _, i := range m.matched {
		out = append(out, m.rows[i])
	}
	return out
}

// VisibleColumns returns the indexes of the visible columns, in field order.
func (m *Mem) VisibleColumns() []int {
	var out []int
	for i, v := range m.visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Fields returns the frozen field order the grid was built over.
func (m *Mem) Fields() []string { return m.fields }

func (m *Mem) recompute() {
	m.matched = m.matched[:0]
	for i, r := range m.rows {
		if r == nil {
			continue
		}
		if m.rowMatches(r) {
			m.matched = append(m.matched, i)
		}
	}
}

func (m *Mem) rowMatches(r *record.Record) bool {
	for col, q := range m.column {
		if q != "" && !contains(r.Get(m.fields[col]), q) {
			return false
		}
	}
	if m.global == "" {
		return true
	}
	for col, field := range m.fields {
		if m.visible[col] && contains(r.Get(field), m.global) {
			return true
		}
	}
	return false
}

func contains(cell, query string) bool {
	return strings.Contains(strings.ToLower(cell), strings.ToLower(query))
}

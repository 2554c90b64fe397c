// Package grid defines the capability contract the viewer core expects from
// a table collaborator, plus an in-memory implementation every surface
// shares. The core never addresses a concrete widget or DOM node; it drives
// whatever satisfies Grid.
package grid

import "errors"

// ErrColumnRange reports a column index outside the grid's column set.
// Callers treat it as a no-op condition, not a failure.
var ErrColumnRange = errors.New("column index out of range")

// Grid is the table collaborator contract: per-column visibility get/set,
// whole-table and per-column text search with redraw, and row/column count
// queries. Searches take effect immediately; a repeated search call with new
// text supersedes the previous one (last write wins).
type Grid interface {
	// ColumnCount returns the number of columns, visible or not.
	ColumnCount() int
	// RowCount returns the number of rows matching the active filters.
	RowCount() int
	// SetColumnVisible shows or hides one column.
	SetColumnVisible(col int, visible bool) error
	// ColumnVisible reports one column's visibility.
	ColumnVisible(col int) (bool, error)
	// Search applies a whole-table filter across visible columns.
	// Empty text clears the whole-table filter.
	Search(query string)
	// SearchColumn applies a filter to a single column.
	// Empty text clears that column's filter.
	SearchColumn(col int, query string) error
	// ClearColumnSearches removes every per-column filter, leaving the
	// whole-table filter untouched.
	ClearColumnSearches()
}

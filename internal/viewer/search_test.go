package viewer

import (
	"log/slog"
	"testing"

	"github.com/litgrid/litgrid/internal/grid"
)

// stubGrid records the filter calls the engine makes, so the tests can
// assert on the clearing/reapply protocol rather than on match results
// (memgrid_test covers those).
type stubGrid struct {
	cols    int
	visible []bool
	global  string
	column  map[int]string
	clears  int
	calls   []string
}

func newStubGrid(cols int) *stubGrid {
	g := &stubGrid{cols: cols, visible: make([]bool, cols), column: make(map[int]string)}
	for i := range g.visible {
		g.visible[i] = true
	}
	return g
}

func (g *stubGrid) ColumnCount() int { return g.cols }
func (g *stubGrid) RowCount() int    { return 0 }

func (g *stubGrid) SetColumnVisible(col int, visible bool) error {
	if col < 0 || col >= g.cols {
		return grid.ErrColumnRange
	}
	g.visible[col] = visible
	return nil
}

func (g *stubGrid) ColumnVisible(col int) (bool, error) {
	if col < 0 || col >= g.cols {
		return false, grid.ErrColumnRange
	}
	return g.visible[col], nil
}

func (g *stubGrid) Search(query string) {
	g.global = query
	g.calls = append(g.calls, "search:"+query)
}

func (g *stubGrid) SearchColumn(col int, query string) error {
	if col < 0 || col >= g.cols {
		return grid.ErrColumnRange
	}
	g.column[col] = query
	g.calls = append(g.calls, "column")
	return nil
}

func (g *stubGrid) ClearColumnSearches() {
	g.column = make(map[int]string)
	g.clears++
}

var engineKeys = []string{"title", "journal", "year"}

func newTestEngine(g grid.Grid) *Engine {
	return newEngine(engineKeys, g, slog.Default())
}

func TestEngineStates(t *testing.T) {
	e := newTestEngine(newStubGrid(3))

	if e.State() != StateIdle {
		t.Errorf("initial state = %v, want idle", e.State())
	}
	e.SetQuery("heart")
	if e.State() != StateGlobal {
		t.Errorf("state = %v, want global", e.State())
	}
	e.SetField("journal")
	if e.State() != StateField {
		t.Errorf("state = %v, want field", e.State())
	}
	e.SetQuery("")
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle after clearing query", e.State())
	}
}

func TestGlobalFilterInvokesWholeTableSearch(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetQuery("heart")
	if g.global != "heart" {
		t.Errorf("grid global = %q", g.global)
	}
	if len(g.column) != 0 {
		t.Errorf("column filters = %v, want none in global mode", g.column)
	}
}

func TestFieldFilterScopesToColumnIndex(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetField("journal")
	e.SetQuery("Nature")

	if g.column[1] != "Nature" {
		t.Errorf("column[1] = %q, want Nature (journal is index 1)", g.column[1])
	}
	if g.global != "" {
		t.Errorf("global = %q, want empty in field mode", g.global)
	}
}

// Changing the selector with a live query must clear all previous filters
// before re-applying, so nothing lingers on the old column.
func TestSwitchingFieldClearsPreviousFilters(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetQuery("x")
	e.SetField("title")
	e.SetField("year")

	if _, ok := g.column[0]; ok {
		t.Error("filter lingered on the previously selected column")
	}
	if g.column[2] != "x" {
		t.Errorf("column[2] = %q, want x", g.column[2])
	}

	// Back to global: the column filter goes, the global one returns.
	e.SetField("")
	if len(g.column) != 0 {
		t.Errorf("column filters = %v after switching to global", g.column)
	}
	if g.global != "x" {
		t.Errorf("global = %q, want x", g.global)
	}
}

func TestNeverBothFilterKinds(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetQuery("a")
	e.SetField("title")
	if g.global != "" && len(g.column) > 0 {
		t.Error("both global and column filters active at once")
	}
}

func TestStaleFieldIsNoOp(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetQuery("x")
	callsBefore := len(g.calls)
	clearsBefore := g.clears

	// A stale preference referencing a vanished field: the whole call is a
	// no-op, the grid stays exactly as it was.
	e.SetField("vanished")
	if len(g.calls) != callsBefore || g.clears != clearsBefore {
		t.Error("stale field key touched the grid")
	}
	if g.global != "x" {
		t.Errorf("global = %q, want the previous filter untouched", g.global)
	}
}

func TestQuickSearchReusesCurrentScope(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetField("year")
	e.QuickSearch("2021")

	if g.column[2] != "2021" {
		t.Errorf("column[2] = %q, want quick search scoped to selected field", g.column[2])
	}

	e.SetField("")
	e.QuickSearch("2020")
	if g.global != "2020" {
		t.Errorf("global = %q, want quick search global without a field", g.global)
	}
}

func TestIdleClearsEverything(t *testing.T) {
	g := newStubGrid(3)
	e := newTestEngine(g)

	e.SetField("journal")
	e.SetQuery("Nature")
	e.SetQuery("")

	if g.global != "" || len(g.column) != 0 {
		t.Errorf("filters remain after idle: global=%q column=%v", g.global, g.column)
	}
}

package viewer

import (
	"log/slog"

	"github.com/litgrid/litgrid/internal/grid"
)

// State is the search engine's mode, derived from the selected field and
// the query text.
type State int

const (
	// StateIdle means no query text; no filter is active.
	StateIdle State = iota
	// StateGlobal filters every visible column with the query.
	StateGlobal
	// StateField filters a single column with the query.
	StateField
)

func (s State) String() string {
	switch s {
	case StateGlobal:
		return "global"
	case StateField:
		return "field"
	default:
		return "idle"
	}
}

// Engine routes query text to either the grid's whole-table search or a
// single-column filter, scoped by the selected field key's position in the
// frozen field order. At most one filter mode is active at a time; every
// change rebuilds the grid's filter state so nothing lingers on a
// previously filtered column.
type Engine struct {
	keys  []string
	g     grid.Grid
	field string
	query string
	log   *slog.Logger
}

func newEngine(keys []string, g grid.Grid, log *slog.Logger) *Engine {
	return &Engine{keys: keys, g: g, log: log}
}

// State derives the current mode.
func (e *Engine) State() State {
	switch {
	case e.query == "":
		return StateIdle
	case e.field == "":
		return StateGlobal
	default:
		return StateField
	}
}

// Field returns the selected field key, "" for whole-table search.
func (e *Engine) Field() string { return e.field }

// Query returns the current query text.
func (e *Engine) Query() string { return e.query }

// SetQuery applies new query text in the current mode. The grid treats a
// repeated call as last-write-wins.
func (e *Engine) SetQuery(q string) {
	e.query = q
	e.apply()
}

// SetField changes the search scope. With a live query this clears all
// previous filters before re-applying, so a filter never survives on a
// column the user has moved away from.
func (e *Engine) SetField(key string) {
	e.field = key
	e.apply()
}

// QuickSearch is the alternate entry point into the same state machine: it
// behaves exactly like SetQuery under the currently selected field. The
// surface owning a separate quick-search input clears its dedicated query
// box display when routing through here.
func (e *Engine) QuickSearch(q string) {
	e.SetQuery(q)
}

func (e *Engine) resolve(key string) (int, bool) {
	for i, k := range e.keys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// apply rebuilds the grid's filter state for the current field and query.
// An unresolvable field key (a stale preference, a vanished column) makes
// the whole call a no-op, leaving the grid exactly as it was.
func (e *Engine) apply() {
	col := 0
	scoped := false
	if e.query != "" && e.field != "" {
		i, ok := e.resolve(e.field)
		if !ok {
			e.log.Debug("search field not in schema, ignoring", "field", e.field)
			return
		}
		col, scoped = i, true
	}

	e.g.Search("")
	e.g.ClearColumnSearches()
	switch {
	case e.query == "":
		// Idle: both filter kinds stay cleared.
	case scoped:
		if err := e.g.SearchColumn(col, e.query); err != nil {
			e.log.Warn("column filter failed", "field", e.field, "error", err)
		}
	default:
		e.g.Search(e.query)
	}
}

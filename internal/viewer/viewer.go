package viewer

import (
	"fmt"
	"log/slog"

	"github.com/litgrid/litgrid/internal/grid"
	"github.com/litgrid/litgrid/internal/prefs"
	"github.com/litgrid/litgrid/internal/record"
	"github.com/litgrid/litgrid/internal/schema"
)

// DefaultPageSize is the grid page length when the configuration does not
// set one.
const DefaultPageSize = 20

// Config is the immutable configuration bundle supplied at initialization.
type Config struct {
	// DefaultVisibleColumns lists the field keys visible at start. Nil means
	// every field; keys not present in the inferred schema are ignored.
	DefaultVisibleColumns []string
	// DefaultSearchField preselects the search field, "" for whole-table.
	DefaultSearchField string
	// PageSize is the grid page length, DefaultPageSize when <= 0.
	PageSize int
	// Title is the page or window title.
	Title string
	// TrustMarkup passes non-hyperlink cell values through as markup instead
	// of escaping them. Only enable for producers that emit trusted HTML.
	TrustMarkup bool
}

// Viewer is the singly-constructed application context for one load: the
// record collection, the frozen field order, the aggregation summary and the
// configuration. It is immutable and safe to share; per-user state lives in
// a Session.
type Viewer struct {
	records record.Collection
	fields  []schema.Field
	keys    []string
	summary *record.Summary
	cfg     Config
	log     *slog.Logger
}

// New builds the application context. Schema inference runs here, once; the
// resulting field order is shared by header, body, column selector and
// search dropdown for the lifetime of the load.
func New(records record.Collection, summary *record.Summary, cfg Config) *Viewer {
	keys := schema.Infer(records)
	if summary == nil {
		summary = &record.Summary{}
	}
	v := &Viewer{
		records: records,
		fields:  schema.Describe(keys),
		keys:    keys,
		summary: summary,
		cfg:     cfg,
		log:     slog.Default(),
	}
	if len(keys) == 0 {
		v.log.Warn("no fields inferred from record collection", "records", len(records))
	}
	return v
}

// Fields returns the frozen field descriptors.
func (v *Viewer) Fields() []schema.Field { return v.fields }

// Keys returns the frozen field key order.
func (v *Viewer) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Records returns the loaded collection.
func (v *Viewer) Records() record.Collection { return v.records }

// Summary returns the aggregation bundle supplied at load.
func (v *Viewer) Summary() *record.Summary { return v.summary }

// Config returns the configuration bundle.
func (v *Viewer) Config() Config { return v.cfg }

// PageSize returns the configured grid page length.
func (v *Viewer) PageSize() int {
	if v.cfg.PageSize <= 0 {
		return DefaultPageSize
	}
	return v.cfg.PageSize
}

// Title returns the configured title.
func (v *Viewer) Title() string {
	if v.cfg.Title == "" {
		return "Literature Viewer"
	}
	return v.cfg.Title
}

// Session is one surface's mutable view state: a grid over the shared load,
// the column visibility controller, and the search engine. Sessions are
// cheap; the web surface builds one per request.
type Session struct {
	viewer *Viewer
	grid   *grid.Mem
	cols   *Columns
	engine *Engine
	store  prefs.Store
}

// NewSession opens a session seeded from saved preferences when the store
// holds any, falling back to the configured defaults. A store read failure
// is logged and treated as "nothing saved"; it never blocks the session.
func (v *Viewer) NewSession(store prefs.Store) *Session {
	g := grid.NewMem(v.keys, v.records)
	cols := newColumns(v.fields, v.cfg.DefaultVisibleColumns, v.log)
	searchField := v.cfg.DefaultSearchField

	if store != nil {
		p, ok, err := store.Load()
		switch {
		case err != nil:
			v.log.Warn("loading preferences", "error", err)
		case ok:
			if p.VisibleColumns != nil {
				cols.SetVisibleKeys(p.VisibleColumns)
			}
			searchField = p.SearchField
		}
	}
	cols.Apply(g)

	engine := newEngine(v.keys, g, v.log)
	engine.SetField(searchField)

	return &Session{viewer: v, grid: g, cols: cols, engine: engine, store: store}
}

// Columns returns the session's visibility controller.
func (s *Session) Columns() *Columns { return s.cols }

// Search returns the session's filter engine.
func (s *Session) Search() *Engine { return s.engine }

// Grid returns the session's grid.
func (s *Session) Grid() *grid.Mem { return s.grid }

// Viewer returns the shared application context.
func (s *Session) Viewer() *Viewer { return s.viewer }

// SavePreferences writes the currently visible columns and the selected
// search field to the session's store. This is the only path that writes
// preferences; nothing saves implicitly. The returned error is for the
// surface to show the user; the in-memory session is unaffected either way.
func (s *Session) SavePreferences() error {
	if s.store == nil {
		return fmt.Errorf("no preference store attached")
	}
	p := prefs.Preferences{
		VisibleColumns: s.cols.VisibleKeys(),
		SearchField:    s.engine.Field(),
	}
	if err := s.store.Save(p); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// Package viewer implements the interactive table core: schema-driven
// rendering of a schema-less record collection, column visibility, the
// two-mode search contract, chart series selection, and preference saves.
// It has no UI dependencies; web, terminal and export surfaces all drive it
// through the grid and chart capability interfaces.
//
// # Architecture
//
// A [Viewer] is constructed exactly once per load from the three artifacts
// the external producer hands in:
//
//   - the record collection
//   - the precomputed aggregation summary
//   - the configuration bundle ([Config])
//
// Construction freezes the field order (schema inference runs once); the
// records, summary, and field order never change afterwards. Every surface
// then opens its own [Session], which owns the mutable per-user state: a
// grid instance, a column visibility controller, and a search engine. The
// ordering is fixed: the schema exists before any render, renders happen
// before the search engine touches the grid, and the chart renders
// independently of all of it.
//
// # Search contract
//
// The search engine is a three-state machine over the selected field and the
// query text: idle, whole-table filter, or single-field filter. At most one
// filter mode is ever active on the grid; switching modes rebuilds the
// filter state from scratch so nothing stale lingers on a previously
// filtered column. A field key that no longer resolves (a stale preference,
// for example) makes the keystroke a no-op instead of an error.
//
// # Failure containment
//
// Nothing in this package is fatal to a surface. A column that refuses to
// toggle is logged and skipped, a chart that cannot render hides itself, a
// failed preference write surfaces a notice and leaves in-memory state
// untouched.
package viewer

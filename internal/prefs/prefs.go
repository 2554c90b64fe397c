// Package prefs persists the user's column and search-field choices across
// sessions. Storage is client-local and split into two named slots, one for
// the visible column set and one for the search field. Slots are written
// only by an explicit save action and read once, when a grid session
// initializes; a save never reaches back into an already-rendered session.
package prefs

// Slot names, shared by every store implementation.
const (
	SlotVisibleColumns = "visible_columns"
	SlotSearchField    = "search_field"
)

// Preferences is the saved state. A nil VisibleColumns means the slot was
// never written (distinct from an explicitly saved empty set). SearchField
// "" means whole-table search.
type Preferences struct {
	VisibleColumns []string `json:"visible_columns"`
	SearchField    string   `json:"search_field"`
}

// Store reads and writes the two preference slots. Load reports ok=false
// when nothing has ever been saved. Save overwrites both slots.
type Store interface {
	Load() (p Preferences, ok bool, err error)
	Save(p Preferences) error
}

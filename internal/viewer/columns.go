package viewer

import (
	"log/slog"

	"github.com/litgrid/litgrid/internal/grid"
	"github.com/litgrid/litgrid/internal/schema"
)

// Toggle is one column selector entry. Toggles carry the field key, not the
// label: temporal synonyms share a label, so the label cannot identify a
// column.
type Toggle struct {
	Key     string
	Label   string
	Checked bool
}

// Columns tracks per-field visibility for one session and pushes it into
// the grid. Field order is the frozen schema order throughout.
type Columns struct {
	fields  []schema.Field
	visible map[string]bool
	log     *slog.Logger
}

// newColumns seeds visibility: members of defaults when given, otherwise
// everything. Default keys not present in the schema are silently ignored.
func newColumns(fields []schema.Field, defaults []string, log *slog.Logger) *Columns {
	c := &Columns{
		fields:  fields,
		visible: make(map[string]bool, len(fields)),
		log:     log,
	}
	if defaults == nil {
		for _, f := range fields {
			c.visible[f.Key] = true
		}
		return c
	}
	c.SetVisibleKeys(defaults)
	return c
}

// Toggle sets one field's visibility. Unknown keys are ignored.
func (c *Columns) Toggle(key string, on bool) {
	if _, ok := c.visible[key]; !ok {
		return
	}
	c.visible[key] = on
}

// Visible reports one field's visibility; unknown keys are not visible.
func (c *Columns) Visible(key string) bool { return c.visible[key] }

// VisibleKeys returns the visible field keys in schema order. The result is
// never nil, so an all-hidden state serializes as an explicit empty set.
func (c *Columns) VisibleKeys() []string {
	out := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		if c.visible[f.Key] {
			out = append(out, f.Key)
		}
	}
	return out
}

// SetVisibleKeys replaces the visible set wholesale. Keys not in the schema
// are silently dropped.
func (c *Columns) SetVisibleKeys(keys []string) {
	member := make(map[string]bool, len(keys))
	for _, k := range keys {
		member[k] = true
	}
	for _, f := range c.fields {
		c.visible[f.Key] = member[f.Key]
	}
}

// Toggles returns the selector entries in schema order.
func (c *Columns) Toggles() []Toggle {
	out := make([]Toggle, len(c.fields))
	for i, f := range c.fields {
		out[i] = Toggle{Key: f.Key, Label: f.Label, Checked: c.visible[f.Key]}
	}
	return out
}

// Apply pushes the visible set into the grid, one column at a time. A
// column that fails to toggle is logged and skipped; the remaining columns
// still apply.
func (c *Columns) Apply(g grid.Grid) {
	for i, f := range c.fields {
		if err := g.SetColumnVisible(i, c.visible[f.Key]); err != nil {
			c.log.Warn("applying column visibility", "field", f.Key, "error", err)
		}
	}
}

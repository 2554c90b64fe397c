package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litgrid/litgrid/internal/viewer"
)

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pickerDimStyle    = lipgloss.NewStyle().Faint(true)
)

// pickerItem is one selectable column entry. It carries the field key, not
// the label: temporal synonyms share a label, so only the key identifies a
// column.
type pickerItem struct {
	key     string
	label   string
	checked bool
}

// picker is the column visibility overlay: a multi-select list over the
// frozen field order. Toggling only mutates the picker; the selection is
// pushed into the session when the user applies.
type picker struct {
	items  []pickerItem
	cursor int
}

// newPicker seeds the list from the session's current toggles.
func newPicker(toggles []viewer.Toggle) picker {
	items := make([]pickerItem, len(toggles))
	for i, tg := range toggles {
		items[i] = pickerItem{key: tg.Key, label: tg.Label, checked: tg.Checked}
	}
	return picker{items: items}
}

func (p *picker) up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *picker) down() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

func (p *picker) toggle() {
	if len(p.items) == 0 {
		return
	}
	p.items[p.cursor].checked = !p.items[p.cursor].checked
}

// selected returns the checked field keys in field order. Never nil, so an
// all-unchecked apply is an explicit empty set.
func (p *picker) selected() []string {
	out := make([]string, 0, len(p.items))
	for _, it := range p.items {
		if it.checked {
			out = append(out, it.key)
		}
	}
	return out
}

func (p *picker) view() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Columns"))
	b.WriteString("\n")
	for i, it := range p.items {
		cursor := "  "
		if i == p.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		mark := "[ ]"
		if it.checked {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, it.label)
		if it.label != it.key {
			line += pickerDimStyle.Render(" (" + it.key + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(pickerDimStyle.Render("\nspace toggle · enter apply · esc cancel"))
	return b.String()
}

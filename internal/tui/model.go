// Package tui is the interactive terminal surface over the viewer core: a
// filterable record table with the same column visibility, two-mode search
// and preference semantics as the web surface, drawn with bubbletea.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/litgrid/litgrid/internal/prefs"
	"github.com/litgrid/litgrid/internal/viewer"
)

type mode int

const (
	modeBrowse mode = iota
	modeQuery
	modePicker
)

const (
	minColWidth = 6
	maxColWidth = 40
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	modeStyle   = lipgloss.NewStyle().Bold(true)
)

// Model is the bubbletea model. The update loop is the single event thread;
// every filter keystroke re-applies through the engine, which the grid
// treats as last-write-wins.
type Model struct {
	viewer *viewer.Viewer
	sess   *viewer.Session

	mode   mode
	tbl    table.Model
	query  textinput.Model
	help   help.Model
	keys   KeyMap
	picker picker
	chart  *chartPanel

	// fieldIdx indexes the frozen field order for the scoped filter,
	// -1 for whole-table search.
	fieldIdx int

	width    int
	height   int
	status   string
	showHelp bool
}

// NewModel builds the terminal surface over one loaded viewer context.
// Preferences seed visibility and the search field exactly as on the web
// surface.
func NewModel(v *viewer.Viewer, store prefs.Store) *Model {
	sess := v.NewSession(store)

	m := &Model{
		viewer:   v,
		sess:     sess,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		query:    textinput.New(),
		fieldIdx: fieldIndex(v.Keys(), sess.Search().Field()),
		width:    80,
		height:   24,
	}
	m.query.Placeholder = "type to filter"
	m.query.Prompt = "/"
	m.query.CharLimit = 256

	m.tbl = table.New(table.WithFocused(true), table.WithHeight(m.viewportHeight(m.height)))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true)
	m.tbl.SetStyles(ts)

	m.chart = newChartPanel(m.width)
	m.refresh()
	return m
}

// viewportHeight sizes the table body: the terminal height minus chrome,
// capped at the configured page size so both surfaces show the same page of
// records at a time. Scrolling pages through the rest.
func (m *Model) viewportHeight(total int) int {
	h := total - 4
	if h < 3 {
		h = 3
	}
	if ps := m.viewer.PageSize(); h > ps {
		h = ps
	}
	return h
}

// fieldIndex resolves a saved search field to its position in the frozen
// order, -1 (whole-table) when stale or empty.
func fieldIndex(keys []string, field string) int {
	for i, k := range keys {
		if k == field {
			return i
		}
	}
	return -1
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tbl.SetHeight(m.viewportHeight(msg.Height))
		m.tbl.SetWidth(msg.Width)
		m.chart.resize(msg.Width, m.viewer)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modePicker:
			return m.updatePicker(msg)
		case modeQuery:
			return m.updateQuery(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Query):
		m.mode = modeQuery
		m.query.SetValue(m.sess.Search().Query())
		m.query.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleField):
		m.cycleField()
		return m, nil

	case key.Matches(msg, m.keys.Columns):
		m.mode = modePicker
		m.picker = newPicker(m.sess.Columns().Toggles())
		return m, nil

	case key.Matches(msg, m.keys.Chart):
		m.chart.toggle(m.viewer)
		return m, nil

	case key.Matches(msg, m.keys.CopyRow):
		m.copyRow()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if err := m.sess.SavePreferences(); err != nil {
			m.status = errorStyle.Render("saving preferences failed: " + err.Error())
		} else {
			m.status = "preferences saved"
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// updateQuery routes keystrokes to the filter input. The filter applies on
// every keystroke; Enter keeps it and returns to browsing, Esc drops it.
func (m *Model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.query.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.query.Blur()
		m.query.SetValue("")
		m.sess.Search().SetQuery("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.sess.Search().SetQuery(m.query.Value())
	m.refresh()
	return m, cmd
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		m.sess.Columns().SetVisibleKeys(m.picker.selected())
		m.sess.Columns().Apply(m.sess.Grid())
		m.mode = modeBrowse
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.picker.toggle()
		return m, nil

	case msg.String() == "up" || msg.String() == "k":
		m.picker.up()
		return m, nil

	case msg.String() == "down" || msg.String() == "j":
		m.picker.down()
		return m, nil
	}
	return m, nil
}

// cycleField advances the scoped search field through the frozen field
// order: all fields, then each field in turn. With a live query the engine
// clears the previous scope before re-applying, so no filter lingers on the
// column the user cycled away from.
func (m *Model) cycleField() {
	keys := m.viewer.Keys()
	if len(keys) == 0 {
		return
	}
	m.fieldIdx++
	if m.fieldIdx >= len(keys) {
		m.fieldIdx = -1
	}
	field := ""
	if m.fieldIdx >= 0 {
		field = keys[m.fieldIdx]
	}
	m.sess.Search().SetField(field)
	m.refresh()
}

// copyRow puts the selected row on the system clipboard as tab-separated
// visible cells.
func (m *Model) copyRow() {
	t := m.sess.View()
	row := m.tbl.Cursor()
	if t.Placeholder != "" || row < 0 || row >= len(t.Rows) {
		return
	}
	var cells []string
	for ci, cell := range t.Rows[row] {
		if t.Headers[ci].Visible {
			cells = append(cells, cell.Text)
		}
	}
	if err := clipboard.WriteAll(strings.Join(cells, "\t")); err != nil {
		m.status = errorStyle.Render("clipboard: " + err.Error())
		return
	}
	m.status = "row copied"
}

// refresh rebuilds the table from the session's current view.
func (m *Model) refresh() {
	t := m.sess.View()

	var visible []viewer.Header
	var visIdx []int
	for i, h := range t.Headers {
		if h.Visible {
			visible = append(visible, h)
			visIdx = append(visIdx, i)
		}
	}

	colWidth := minColWidth
	if n := len(visible); n > 0 {
		colWidth = (m.width - n) / n
		if colWidth < minColWidth {
			colWidth = minColWidth
		}
		if colWidth > maxColWidth {
			colWidth = maxColWidth
		}
	}

	cols := make([]table.Column, len(visible))
	for i, h := range visible {
		cols[i] = table.Column{Title: h.Label, Width: colWidth}
	}
	if len(cols) == 0 {
		cols = []table.Column{{Title: "No data", Width: m.width - 2}}
	}

	var rows []table.Row
	if len(visIdx) == 0 {
		// All columns hidden: one full-width placeholder cell, like the
		// empty-schema table.
		ph := t.Placeholder
		if ph == "" {
			ph = "All columns hidden."
		}
		rows = []table.Row{{ph}}
	} else if t.Placeholder == "" {
		rows = make([]table.Row, len(t.Rows))
		for ri, row := range t.Rows {
			cells := make([]string, len(visIdx))
			for i, ci := range visIdx {
				cells[i] = runewidth.Truncate(row[ci].Text, colWidth, "…")
			}
			rows[ri] = cells
		}
	} else {
		rows = []table.Row{make(table.Row, len(cols))}
		rows[0][0] = t.Placeholder
	}

	// SetColumns panics on rows wider than the column set, so rows go in
	// second when shrinking and first when growing.
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)

	m.status = fmt.Sprintf("%d of %d records", t.Count, t.Total)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == modePicker {
		return m.picker.view()
	}

	var b strings.Builder
	b.WriteString(modeStyle.Render(m.viewer.Title()))
	b.WriteString("\n")
	b.WriteString(m.tbl.View())
	b.WriteString("\n")

	field := "all fields"
	if m.fieldIdx >= 0 {
		keys := m.viewer.Keys()
		field = keys[m.fieldIdx]
	}
	line := fmt.Sprintf("%s · field: %s", m.status, field)
	if m.mode == modeQuery {
		line = m.query.View() + "  " + statusStyle.Render(line)
	} else if q := m.sess.Search().Query(); q != "" {
		line = fmt.Sprintf("filter: %q  %s", q, statusStyle.Render(line))
	} else {
		line = statusStyle.Render(line)
	}
	b.WriteString(line)

	if cv := m.chart.view(); cv != "" {
		b.WriteString("\n\n")
		b.WriteString(cv)
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String()
}

// Run starts the terminal surface. It refuses to run without a terminal on
// stdout, since the alt-screen program would scramble piped output.
func Run(v *viewer.Viewer, store prefs.Store) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tui mode needs a terminal on stdout")
	}

	m := NewModel(v, store)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running terminal viewer: %w", err)
	}
	return nil
}

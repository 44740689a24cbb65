package viewer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/smileynet/tpsearch/internal/render"
	"github.com/smileynet/tpsearch/internal/search"
)

// Title is the heading shown at the top of the viewer.
const Title = "HRDC Training Providers Search Simplified"

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// minGridRows is the smallest grid body height the layout will produce.
const minGridRows = 3

// Model is the root Bubble Tea model for the provider search viewer.
type Model struct {
	source   search.Table
	filtered search.Table
	result   search.PageResult

	filters  filterState
	focus    Focus
	advanced bool

	pageSizes []int
	sizeIdx   int
	page      int

	grid table.Model
	help help.Model

	egg       EggState
	eggArt    string
	eggOn     bool
	sourceRef string

	width  int
	height int
	log    zerolog.Logger
}

// ModelOption configures optional Model settings.
type ModelOption func(*Model)

// WithPageSizes sets the selectable page sizes and the initial one. An
// initial size not in sizes selects the first size.
func WithPageSizes(sizes []int, initial int) ModelOption {
	return func(m *Model) {
		if len(sizes) == 0 {
			return
		}
		m.pageSizes = slices.Clone(sizes)
		m.sizeIdx = max(slices.Index(m.pageSizes, initial), 0)
	}
}

// WithLogger sets the logger used for filter and paging events.
func WithLogger(l zerolog.Logger) ModelOption {
	return func(m *Model) { m.log = l }
}

// WithEasterEgg enables the surprise panel with the given art.
func WithEasterEgg(art string) ModelOption {
	return func(m *Model) {
		m.eggOn = true
		m.eggArt = art
	}
}

// WithSourceName labels the dataset in the header line.
func WithSourceName(name string) ModelOption {
	return func(m *Model) { m.sourceRef = name }
}

// NewModel creates a viewer over t with the search box focused, showing the
// first page of the unfiltered table.
func NewModel(t search.Table, opts ...ModelOption) Model {
	m := Model{
		source:    t,
		filters:   newFilterState(),
		focus:     FocusSearch,
		pageSizes: []int{25, 50, 100, 500, 1000},
		page:      1,
		help:      help.New(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.grid = table.New(
		table.WithColumns(columns(ColumnWidths(80))),
		table.WithHeight(minGridRows),
		table.WithStyles(gridStyles()),
	)
	m.filters, _ = m.filters.focus(FocusSearch)
	m.refilter()
	m.log.Info().Int("rows", len(t)).Str("source", m.sourceRef).Msg("dataset loaded")
	return m
}

// Init starts the cursor blink in the focused search box.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the page currently displayed.
func (m Model) Result() search.PageResult {
	return m.result
}

// Focus returns the widget that currently receives key input.
func (m Model) Focus() Focus {
	return m.focus
}

// Egg returns the surprise panel state.
func (m Model) Egg() EggState {
	return m.egg
}

// PageSize returns the selected page size.
func (m Model) PageSize() int {
	return m.pageSizes[m.sizeIdx]
}

// Update handles incoming messages with focus-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	if m.focus.isInput() {
		m.filters, cmd, _ = m.filters.update(m.focus, msg)
	}
	return m, cmd
}

// handleKey processes key messages with global, surprise-panel, and
// focus-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.egg == EggShown {
		if key.Matches(msg, EggKeyMap().Close) {
			m.egg = m.egg.Close()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, surpriseKey):
		if m.eggOn {
			m.egg = m.egg.Reveal()
			m.log.Debug().Msg("surprise revealed")
		}
		return m, nil
	case key.Matches(msg, nextFocusKey):
		return m.cycleFocus(1)
	case key.Matches(msg, prevFocusKey):
		return m.cycleFocus(-1)
	case key.Matches(msg, advancedKey):
		return m.toggleAdvanced()
	}

	if m.focus == FocusGrid {
		return m.handleGridKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleInputKey edits the focused filter, refiltering on any value change.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := InputKeyMap()
	switch {
	case key.Matches(msg, keys.PageDown):
		m.setPage(m.page + 1)
		return m, nil
	case key.Matches(msg, keys.PageUp):
		m.setPage(m.page - 1)
		return m, nil
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	m.filters, cmd, changed = m.filters.update(m.focus, msg)
	if changed {
		m.page = 1
		m.refilter()
	}
	return m, cmd
}

// handleGridKey pages, resizes pages, or moves the grid cursor.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := GridKeyMap()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextPage):
		m.setPage(m.page + 1)
		return m, nil
	case key.Matches(msg, keys.PrevPage):
		m.setPage(m.page - 1)
		return m, nil
	case key.Matches(msg, keys.FirstPage):
		m.setPage(1)
		return m, nil
	case key.Matches(msg, keys.LastPage):
		m.setPage(m.result.TotalPages)
		return m, nil
	case key.Matches(msg, keys.Bigger):
		m.setPageSize(m.sizeIdx + 1)
		return m, nil
	case key.Matches(msg, keys.Smaller):
		m.setPageSize(m.sizeIdx - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// focusOrder lists the focusable widgets in tab order for the current layout.
func (m Model) focusOrder() []Focus {
	if m.advanced {
		return []Focus{FocusSearch, FocusName, FocusAddress, FocusPhone, FocusEmail, FocusGrid}
	}
	return []Focus{FocusSearch, FocusGrid}
}

// cycleFocus moves focus by step positions through focusOrder, wrapping.
func (m Model) cycleFocus(step int) (tea.Model, tea.Cmd) {
	order := m.focusOrder()
	i := max(slices.Index(order, m.focus), 0)
	next := order[(i+step+len(order))%len(order)]
	return m.setFocus(next)
}

func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	m.filters, cmd = m.filters.focus(f)
	if f == FocusGrid {
		m.grid.Focus()
	} else {
		m.grid.Blur()
	}
	return m, cmd
}

// toggleAdvanced shows or hides the column filter panel. Hiding it while a
// column filter is focused returns focus to the search box.
func (m Model) toggleAdvanced() (tea.Model, tea.Cmd) {
	m.advanced = !m.advanced
	m.layout()
	if !m.advanced && m.focus.isFieldFilter() {
		return m.setFocus(FocusSearch)
	}
	return m, nil
}

// refilter recomputes the filtered set from the current inputs and repaginates.
func (m *Model) refilter() {
	c := m.filters.criteria()
	m.filtered = search.Filter(m.source, c)
	m.log.Debug().
		Str("global", c.Global).
		Int("field_filters", countFieldFilters(c)).
		Int("matches", len(m.filtered)).
		Msg("filter applied")
	m.repaginate()
}

// setPage moves to page n, clamped to the valid range.
func (m *Model) setPage(n int) {
	m.page = n
	m.repaginate()
}

// setPageSize selects pageSizes[idx] (clamped) and keeps the current page in range.
func (m *Model) setPageSize(idx int) {
	idx = min(max(idx, 0), len(m.pageSizes)-1)
	if idx == m.sizeIdx {
		return
	}
	m.sizeIdx = idx
	m.log.Debug().Int("page_size", m.PageSize()).Msg("page size changed")
	m.repaginate()
}

// repaginate clamps the page number and slices the filtered set.
func (m *Model) repaginate() {
	size := m.PageSize()
	total := search.TotalPages(len(m.filtered), size)
	if clamped := search.ClampPage(m.page, total); clamped != m.page {
		m.log.Debug().Int("requested", m.page).Int("page", clamped).Msg("page clamped")
		m.page = clamped
	}
	m.result = search.Paginate(m.filtered, len(m.source), search.PageRequest{Size: size, Number: m.page})

	rows := make([]table.Row, len(m.result.Rows))
	for i, r := range m.result.Rows {
		rows[i] = table.Row(r.Values())
	}
	m.grid.SetRows(rows)
	if len(rows) > 0 {
		m.grid.SetCursor(0)
	}
}

// layout sizes the grid and inputs to the terminal.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	inner := max(m.width-borderChrome, 0)
	m.filters = m.filters.setWidth(m.width)
	m.grid.SetColumns(columns(ColumnWidths(inner)))
	m.grid.SetWidth(inner)
	m.grid.SetHeight(m.gridHeight())
}

// gridHeight returns the rows available to the grid body after the title,
// filters, status line, caption, border chrome, and help bar.
func (m Model) gridHeight() int {
	const (
		titleLines   = 1
		statusLines  = 1
		captionLines = 1
		headerLines  = 2 // grid header plus its underline
	)
	used := titleLines + m.filters.lines(m.advanced) + statusLines + captionLines +
		headerLines + borderChrome + helpBarHeight
	return max(m.height-used, minGridRows)
}

func columns(widths [4]int) []table.Column {
	headers := render.Headers()
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}
	return cols
}

func countFieldFilters(c search.Criteria) int {
	n := 0
	for _, q := range c.Fields {
		if q != "" {
			n++
		}
	}
	return n
}

// View renders the title, filters, status line, grid, caption, and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	title := titleStyle.Render(Title)
	if m.sourceRef != "" {
		title += "  " + mutedText.Render(m.sourceRef)
	}
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(m.filters.View(m.advanced))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')

	if m.egg == EggShown {
		b.WriteString(m.viewEgg())
		b.WriteByte('\n')
		b.WriteString(m.help.View(EggKeyMap()))
		return b.String()
	}

	if m.result.FilteredRows == 0 {
		b.WriteString(warnStyle.Render(render.NoMatches))
		b.WriteByte('\n')
		b.WriteString(mutedText.Render(render.Caption(m.result)))
	} else {
		style := UnfocusedBorder()
		if m.focus == FocusGrid {
			style = FocusedBorder()
		}
		b.WriteString(style.Render(m.grid.View()))
		b.WriteByte('\n')
		b.WriteString(mutedText.Render(render.Caption(m.result)))
	}
	b.WriteByte('\n')

	if m.focus == FocusGrid {
		b.WriteString(m.help.View(GridKeyMap()))
	} else {
		b.WriteString(m.help.View(InputKeyMap()))
	}
	return b.String()
}

// statusLine shows the page size selector and the page position.
func (m Model) statusLine() string {
	return fmt.Sprintf("%s %d   %s",
		labelStyle.Render("Rows per page:"), m.PageSize(),
		labelStyle.Render(render.PageLabel(m.result)))
}

// viewEgg renders the surprise panel.
func (m Model) viewEgg() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		"🐣 Secret unlocked!",
		"",
		m.eggArt,
		"",
		mutedText.Render("You found the hidden surprise 🎉"),
	)
	return eggStyle.Render(body)
}

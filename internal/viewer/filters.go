package viewer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/tpsearch/internal/search"
)

// filterInputCharLimit caps the length of any search or filter query.
const filterInputCharLimit = 120

// filterState owns the global search box and the four column filters.
// inputs is indexed by Focus: FocusSearch, then one entry per search.Field.
type filterState struct {
	inputs [5]textinput.Model
}

// inputField maps an input Focus to its record field.
var inputField = map[Focus]search.Field{
	FocusName:    search.FieldName,
	FocusAddress: search.FieldAddress,
	FocusPhone:   search.FieldPhone,
	FocusEmail:   search.FieldEmail,
}

func newFilterState() filterState {
	var fs filterState

	fs.inputs[FocusSearch] = newInput("Global Search (name, address, phone, email): ",
		"Type anything to filter across all columns...")
	for focus, field := range inputField {
		fs.inputs[focus] = newInput("Filter by "+field.Header()+": ", "")
	}
	return fs
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = filterInputCharLimit
	return ti
}

// criteria builds search criteria from the current input values. Column
// filters keep applying while the advanced panel is collapsed.
func (fs filterState) criteria() search.Criteria {
	c := search.Criteria{Global: fs.inputs[FocusSearch].Value()}
	for focus, field := range inputField {
		if v := fs.inputs[focus].Value(); v != "" {
			c = c.With(field, v)
		}
	}
	return c
}

// focus moves keyboard focus to f, blurring every other input.
func (fs filterState) focus(f Focus) (filterState, tea.Cmd) {
	var cmd tea.Cmd
	for i := range fs.inputs {
		if Focus(i) == f {
			cmd = fs.inputs[i].Focus()
		} else {
			fs.inputs[i].Blur()
		}
	}
	return fs, cmd
}

// update forwards msg to the input at f and reports whether its value changed.
func (fs filterState) update(f Focus, msg tea.Msg) (filterState, tea.Cmd, bool) {
	if !f.isInput() {
		return fs, nil, false
	}
	before := fs.inputs[f].Value()
	var cmd tea.Cmd
	fs.inputs[f], cmd = fs.inputs[f].Update(msg)
	return fs, cmd, fs.inputs[f].Value() != before
}

// setWidth sizes every input to fit width columns, prompt included.
func (fs filterState) setWidth(width int) filterState {
	for i := range fs.inputs {
		w := width - len([]rune(fs.inputs[i].Prompt)) - 1
		if w < 1 {
			w = 1
		}
		fs.inputs[i].Width = w
	}
	return fs
}

// View renders the search box and, when advanced is true, the column filters.
func (fs filterState) View(advanced bool) string {
	out := fs.inputs[FocusSearch].View()
	if !advanced {
		return out + "\n" + mutedText.Render("ctrl+f: advanced column filters")
	}
	out += "\n" + labelStyle.Render("Advanced column filters")
	for _, f := range []Focus{FocusName, FocusAddress, FocusPhone, FocusEmail} {
		out += "\n  " + fs.inputs[f].View()
	}
	return out
}

// lines returns how many terminal lines View occupies.
func (fs filterState) lines(advanced bool) int {
	if advanced {
		return 2 + len(inputField)
	}
	return 2
}

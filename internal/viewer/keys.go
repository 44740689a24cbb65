package viewer

import "github.com/charmbracelet/bubbles/key"

// inputKeys holds key bindings active while a text input has focus.
type inputKeys struct {
	Next     key.Binding
	Prev     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Advanced key.Binding
	Surprise key.Binding
	Quit     key.Binding
}

// ShortHelp returns the input bindings for the help bar.
func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Advanced, k.PageDown, k.PageUp, k.Quit}
}

// FullHelp returns the input bindings grouped for expanded help.
func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Advanced},
		{k.PageDown, k.PageUp},
		{k.Surprise, k.Quit},
	}
}

// gridKeys holds key bindings active while the result grid has focus.
type gridKeys struct {
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Next      key.Binding
	Advanced  key.Binding
	Surprise  key.Binding
	Quit      key.Binding
}

// ShortHelp returns the grid bindings for the help bar.
func (k gridKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Bigger, k.Smaller, k.Next, k.Quit}
}

// FullHelp returns the grid bindings grouped for expanded help.
func (k gridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.Bigger, k.Smaller},
		{k.Next, k.Advanced, k.Surprise, k.Quit},
	}
}

// eggKeys holds key bindings active while the surprise panel is open.
type eggKeys struct {
	Close key.Binding
}

// ShortHelp returns the surprise panel bindings for the help bar.
func (k eggKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp returns the surprise panel bindings grouped for expanded help.
func (k eggKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close}}
}

var (
	nextFocusKey = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	)
	prevFocusKey = key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	)
	advancedKey = key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "column filters"),
	)
	surpriseKey = key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "🎁"),
	)
)

// InputKeyMap returns the key bindings for text input focus.
func InputKeyMap() inputKeys {
	return inputKeys{
		Next:     nextFocusKey,
		Prev:     prevFocusKey,
		Advanced: advancedKey,
		Surprise: surpriseKey,
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// GridKeyMap returns the key bindings for grid focus.
func GridKeyMap() gridKeys {
	return gridKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p/←", "prev page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows"),
		),
		Next:     nextFocusKey,
		Advanced: advancedKey,
		Surprise: surpriseKey,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EggKeyMap returns the key bindings for the surprise panel.
func EggKeyMap() eggKeys {
	return eggKeys{
		Close: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close surprise"),
		),
	}
}

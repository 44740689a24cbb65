package viewer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/tpsearch/internal/search"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// providers builds n records. Even rows are in Kuala Lumpur, odd rows in Penang.
func providers(n int) search.Table {
	t := make(search.Table, n)
	for i := range t {
		city := "Kuala Lumpur"
		if i%2 == 1 {
			city = "Penang"
		}
		t[i] = search.Record{
			Name:    fmt.Sprintf("Provider %03d Academy", i+1),
			Address: fmt.Sprintf("%d Jalan Utama, %s", i+1, city),
			Phone:   fmt.Sprintf("03-%07d", i+1),
			Email:   fmt.Sprintf("info%03d@provider.my", i+1),
		}
	}
	return t
}

// newSizedModel builds a model over t and applies a window size.
func newSizedModel(t search.Table, w, h int, opts ...ModelOption) Model {
	m := NewModel(t, opts...)
	return send(m, tea.WindowSizeMsg{Width: w, Height: h})
}

// send delivers msg and returns the updated Model.
func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// typeText sends s one rune at a time.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// collectKeys flattens the key strings of all bindings.
func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

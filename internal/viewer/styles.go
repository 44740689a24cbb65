package viewer

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// MinColumnWidth is the narrowest a grid column is allowed to shrink.
const MinColumnWidth = 8

// columnShares are the relative widths of Name, Address, Phone, Email.
var columnShares = [4]int{30, 36, 14, 20}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"})

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	eggStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "5", Dark: "13"}).
			Padding(0, 1)
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// gridStyles returns the bubbles table styles used by the result grid.
func gridStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "229"}).
		Background(lipgloss.AdaptiveColor{Light: "153", Dark: "57"})
	return s
}

// ColumnWidths splits totalWidth across the four grid columns by share,
// never going below MinColumnWidth per column. Each bubbles table cell adds
// two characters of padding, which is subtracted first.
func ColumnWidths(totalWidth int) [4]int {
	const cellPadding = 2
	avail := totalWidth - cellPadding*len(columnShares)

	var widths [4]int
	sum := 0
	for _, s := range columnShares {
		sum += s
	}
	used := 0
	for i, s := range columnShares {
		w := avail * s / sum
		if w < MinColumnWidth {
			w = MinColumnWidth
		}
		widths[i] = w
		used += w
	}
	// Give rounding leftovers to the address column.
	if rest := avail - used; rest > 0 {
		widths[1] += rest
	}
	return widths
}

// Package render writes a search.PageResult for non-interactive output and
// builds the row-count captions shared with the interactive viewer.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/tpsearch/internal/search"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("render: unknown format %q (want text, json, or yaml)", s)
	}
}

// NoMatches is the warning shown when the filters exclude every row.
const NoMatches = "No rows match your search/filters."

// Caption describes the visible slice of a non-empty page, e.g.
// "Showing rows 26–50 of 1,234 filtered rows (from 5,000 total rows)."
// With no matches it returns the "Filtered from N total rows." note.
func Caption(res search.PageResult) string {
	p := message.NewPrinter(language.English)
	if res.FilteredRows == 0 {
		return p.Sprintf("Filtered from %d total rows.", res.TotalRows)
	}
	if res.Empty() {
		return p.Sprintf("Page %d is past the last page (%d) of %d filtered rows.",
			res.Page, res.TotalPages, res.FilteredRows)
	}
	return p.Sprintf("Showing rows %d–%d of %d filtered rows (from %d total rows).",
		res.Start+1, res.End, res.FilteredRows, res.TotalRows)
}

// PageLabel returns "Page n of m".
func PageLabel(res search.PageResult) string {
	return message.NewPrinter(language.English).Sprintf("Page %d of %d", res.Page, res.TotalPages)
}

// Headers returns the source column headers in display order.
func Headers() []string {
	headers := make([]string, len(search.Fields))
	for i, f := range search.Fields {
		headers[i] = f.Header()
	}
	return headers
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Write renders res to w in the given format.
func Write(w io.Writer, res search.PageResult, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("render: encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("render: encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeText(w, res)
	}
}

func writeText(w io.Writer, res search.PageResult) error {
	if res.FilteredRows == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", NoMatches, Caption(res))
		return err
	}
	if res.Empty() {
		_, err := fmt.Fprintln(w, Caption(res))
		return err
	}

	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = r.Values()
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s · %s\n", t.Render(), Caption(res), PageLabel(res))
	return err
}

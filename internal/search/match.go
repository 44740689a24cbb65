package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding for substring tests.
// Each folder is confined to a single Filter or Matches call.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Fold()}
}

func (f *folder) fold(s string) string {
	return f.caser.String(s)
}

// contains reports whether foldedQuery occurs in value after folding value.
func (f *folder) contains(value, foldedQuery string) bool {
	return strings.Contains(f.fold(value), foldedQuery)
}

// MatchesGlobal reports whether query occurs, ignoring case, in any of the
// record's four fields. An empty query matches every record.
func MatchesGlobal(r Record, query string) bool {
	if query == "" {
		return true
	}
	f := newFolder()
	return f.matchesGlobal(r, f.fold(query))
}

func (f *folder) matchesGlobal(r Record, foldedQuery string) bool {
	for _, field := range Fields {
		if f.contains(r.Value(field), foldedQuery) {
			return true
		}
	}
	return false
}

// MatchesField reports whether query occurs, ignoring case, in value.
// An empty query always matches.
func MatchesField(value, query string) bool {
	if query == "" {
		return true
	}
	f := newFolder()
	return f.contains(value, f.fold(query))
}

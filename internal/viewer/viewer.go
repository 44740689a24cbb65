// Package viewer implements the interactive provider search TUI: a global
// search box, optional per-column filters, and a paginated grid of matches.
// All filtering and paging is delegated to internal/search.
package viewer

// Focus identifies which widget receives key input.
type Focus int

const (
	FocusSearch  Focus = iota // Global search input.
	FocusName                 // Name column filter.
	FocusAddress              // Address column filter.
	FocusPhone                // Telephone column filter.
	FocusEmail                // Email column filter.
	FocusGrid                 // Result grid (page navigation keys active).
)

// isInput reports whether f is one of the text inputs.
func (f Focus) isInput() bool {
	return f >= FocusSearch && f <= FocusEmail
}

// isFieldFilter reports whether f is one of the advanced column filters.
func (f Focus) isFieldFilter() bool {
	return f >= FocusName && f <= FocusEmail
}

// EggState is the hidden surprise panel's two-state machine.
type EggState int

const (
	EggHidden EggState = iota
	EggShown
)

// Reveal opens the panel. Revealing an open panel keeps it open.
func (EggState) Reveal() EggState { return EggShown }

// Close hides the panel. Closing a hidden panel keeps it hidden.
func (EggState) Close() EggState { return EggHidden }


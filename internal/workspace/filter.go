package workspace

import "strings"

// FilterMode identifies which of the three mutually exclusive list filters is
// active.
type FilterMode int

const (
	// ModeUnfiltered shows every note the user owns.
	ModeUnfiltered FilterMode = iota

	// ModeSearch shows notes whose title or content matches a query.
	ModeSearch

	// ModeTag shows notes carrying a selected tag.
	ModeTag
)

// FilterState is a tagged variant: exactly one of the three modes is active
// and only that mode's payload is populated. Constructing a new state through
// the constructors below structurally discards the other variants' data, so a
// non-empty search query and a selected tag can never coexist.
type FilterState struct {
	mode  FilterMode
	query string
	tag   string
}

// Unfiltered returns the state that shows all notes.
func Unfiltered() FilterState {
	return FilterState{mode: ModeUnfiltered}
}

// SearchText returns the search variant for query. A blank query degenerates
// to Unfiltered so an empty search box never shadows the full list.
func SearchText(query string) FilterState {
	query = strings.TrimSpace(query)
	if query == "" {
		return Unfiltered()
	}
	return FilterState{mode: ModeSearch, query: query}
}

// TagFilter returns the tag variant for tag. A blank tag degenerates to
// Unfiltered.
func TagFilter(tag string) FilterState {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Unfiltered()
	}
	return FilterState{mode: ModeTag, tag: tag}
}

// Mode reports the active variant.
func (f FilterState) Mode() FilterMode {
	return f.mode
}

// Query returns the search text; empty unless Mode is ModeSearch.
func (f FilterState) Query() string {
	return f.query
}

// Tag returns the selected tag; empty unless Mode is ModeTag.
func (f FilterState) Tag() string {
	return f.tag
}

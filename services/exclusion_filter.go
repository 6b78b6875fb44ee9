package services

import "strings"

// ExclusionFilter is the set of content types that never produce audit entries.
// It is read-only after construction and safe for concurrent use.
type ExclusionFilter struct {
	types map[string]struct{}
}

// NewExclusionFilter builds a filter from configured content type identifiers.
// Blank entries are ignored; matching is exact after trimming.
func NewExclusionFilter(contentTypes []string) *ExclusionFilter {
	f := &ExclusionFilter{types: make(map[string]struct{}, len(contentTypes))}
	for _, ct := range contentTypes {
		if ct = strings.TrimSpace(ct); ct != "" {
			f.types[ct] = struct{}{}
		}
	}
	return f
}

// Excludes reports whether contentType is exempt from capture
func (f *ExclusionFilter) Excludes(contentType string) bool {
	if f == nil {
		return false
	}
	_, ok := f.types[contentType]
	return ok
}

// Len returns the number of excluded content types
func (f *ExclusionFilter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.types)
}

package editor

import (
	"strings"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// PageSize is the fixed number of entries per page.
const PageSize = 10

// Matches reports whether the entry passes both the category and the search
// predicate. The category matches when it is catalog.CategoryAll or equals
// the entry's category. A non-empty query matches case-insensitively
// against the key, the description, or any translation value in any
// language, not just the one being edited.
func Matches(e catalog.Entry, category, query string) bool {
	if category != catalog.CategoryAll && e.Category != category {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Key), q) {
		return true
	}
	if e.Description != "" && strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	for _, tv := range e.Translations {
		if strings.Contains(strings.ToLower(tv.Value), q) {
			return true
		}
	}
	return false
}

// FilterEntries returns the entries passing Matches, preserving input order.
func FilterEntries(entries []catalog.Entry, category, query string) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, category, query) {
			out = append(out, e)
		}
	}
	return out
}

// PageCount returns ceil(n / PageSize), flooring at one page so the page
// clamp stays well-defined for an empty filtered set.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage limits page to [1, PageCount(n)].
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if last := PageCount(n); page > last {
		return last
	}
	return page
}

// PageSlice returns the 1-based page's window of entries.
func PageSlice(entries []catalog.Entry, page int) []catalog.Entry {
	page = ClampPage(page, len(entries))
	start := (page - 1) * PageSize
	if start >= len(entries) {
		return nil
	}
	end := min(start+PageSize, len(entries))
	return entries[start:end]
}

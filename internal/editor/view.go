package editor

import (
	"sync"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// View derives the visible subset of a project's entries from the category
// filter, the search query, and the current page, and keeps the selection
// consistent with it. Changing the category or query resets the page to 1
// and clears the selection; changing the page also clears the selection so
// a bulk edit never covers rows the user has not seen.
type View struct {
	mu         sync.RWMutex
	entries    []catalog.Entry
	byID       map[int64]catalog.Entry
	categories []string
	category   string
	query      string
	page       int
	selection  *Selection
}

// NewView returns an empty View showing all categories on page 1.
func NewView() *View {
	return &View{
		byID:       make(map[int64]catalog.Entry),
		categories: []string{catalog.CategoryAll},
		category:   catalog.CategoryAll,
		page:       1,
		selection:  NewSelection(),
	}
}

// SetEntries replaces the underlying entry set, usually after a cache
// refresh. The category list is recomputed but the active category is kept
// even when momentarily absent from the new set. The page is clamped and
// the selection is intersected with the new filtered ids so it never refers
// to entries that no longer pass the filter.
func (v *View) SetEntries(entries []catalog.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries = entries
	v.byID = make(map[int64]catalog.Entry, len(entries))
	for _, e := range entries {
		v.byID[e.ID] = e
	}
	v.categories = catalog.Categories(entries)

	filtered := v.filteredLocked()
	v.page = ClampPage(v.page, len(filtered))
	v.selection.Retain(entryIDs(filtered))
}

// SetCategory changes the category filter. A real change resets the page to
// 1 and clears the selection.
func (v *View) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if category == v.category {
		return
	}
	v.category = category
	v.page = 1
	v.selection.Clear()
}

// SetQuery changes the free-text search query. A real change resets the
// page to 1 and clears the selection.
func (v *View) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if query == v.query {
		return
	}
	v.query = query
	v.page = 1
	v.selection.Clear()
}

// SetPage moves to the given page, clamped to the valid range. Moving to a
// different page clears the selection.
func (v *View) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	page = ClampPage(page, len(v.filteredLocked()))
	if page == v.page {
		return
	}
	v.page = page
	v.selection.Clear()
}

// NextPage advances one page, clamped to the last page.
func (v *View) NextPage() { v.SetPage(v.Page() + 1) }

// PrevPage goes back one page, clamped to the first page.
func (v *View) PrevPage() { v.SetPage(v.Page() - 1) }

// Filtered returns the entries passing the current category and query, in
// catalog order.
func (v *View) Filtered() []catalog.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filteredLocked()
}

// Visible returns the current page's window of the filtered entries.
func (v *View) Visible() []catalog.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return PageSlice(v.filteredLocked(), v.page)
}

// Page returns the current 1-based page.
func (v *View) Page() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.page
}

// PageCount returns the number of pages for the current filtered set.
func (v *View) PageCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return PageCount(len(v.filteredLocked()))
}

// Categories returns the current category list, "all" first.
func (v *View) Categories() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, len(v.categories))
	copy(out, v.categories)
	return out
}

// Category returns the active category filter.
func (v *View) Category() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.category
}

// Query returns the active search query.
func (v *View) Query() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.query
}

// Entry looks up an entry by id across the full (unfiltered) set.
func (v *View) Entry(id int64) (catalog.Entry, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	e, ok := v.byID[id]
	return e, ok
}

// ToggleSelect flips selection for one entry. Only entries in the filtered
// set can be selected.
func (v *View) ToggleSelect(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.filteredLocked() {
		if e.ID == id {
			v.selection.Toggle(id)
			return nil
		}
	}
	return ErrNotFiltered
}

// SelectAll selects every filtered entry regardless of pagination when on
// is true, and empties the selection when on is false.
func (v *View) SelectAll(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !on {
		v.selection.Clear()
		return
	}
	v.selection.Replace(entryIDs(v.filteredLocked()))
}

// AllSelected reports whether the selection covers the whole filtered set.
func (v *View) AllSelected() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	filtered := v.filteredLocked()
	return len(filtered) > 0 && v.selection.Len() == len(filtered)
}

// Selected reports whether the entry id is selected.
func (v *View) Selected(id int64) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selection.Has(id)
}

// SelectedIDs returns the selected ids in ascending order.
func (v *View) SelectedIDs() []int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selection.IDs()
}

// SelectionSize returns the number of selected entries.
func (v *View) SelectionSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selection.Len()
}

// ClearSelection empties the selection.
func (v *View) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Clear()
}

func (v *View) filteredLocked() []catalog.Entry {
	return FilterEntries(v.entries, v.category, v.query)
}

func entryIDs(entries []catalog.Entry) []int64 {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

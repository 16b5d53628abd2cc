package editor

import "slices"

// Selection is the set of selected entry ids. The View keeps it a subset of
// the currently filtered entries; Selection itself is just the set.
type Selection struct {
	ids map[int64]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int64]struct{})}
}

// Toggle flips membership for one id.
func (s *Selection) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has reports whether id is selected.
func (s *Selection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Replace sets the selection to exactly the given ids.
func (s *Selection) Replace(ids []int64) {
	s.ids = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[int64]struct{})
}

// Retain drops every id not present in keep, preserving the subset
// invariant when the underlying filtered set changes.
func (s *Selection) Retain(keep []int64) {
	allowed := make(map[int64]struct{}, len(keep))
	for _, id := range keep {
		allowed[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := allowed[id]; !ok {
			delete(s.ids, id)
		}
	}
}

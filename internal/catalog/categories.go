package catalog

// CategoryAll is the synthetic category that matches every entry. It is
// always the first element of an extracted category list and never a stored
// value.
const CategoryAll = "all"

// Categories returns the distinct category values across entries, in
// first-seen order, prefixed with CategoryAll. A stored category equal to
// CategoryAll is ignored so the synthetic value appears exactly once.
func Categories(entries []Entry) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{CategoryAll: true}
	for _, e := range entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	return out
}

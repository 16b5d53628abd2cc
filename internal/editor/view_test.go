package editor

import (
	"slices"
	"testing"

	"github.com/keyline-dev/keyline/internal/catalog"
)

func TestSelectAllCoversEveryFilteredPage(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(25))

	v.SelectAll(true)
	if got := v.SelectionSize(); got != 25 {
		t.Errorf("selection size = %d, want all 25 filtered entries, not just the visible page", got)
	}
	if !v.AllSelected() {
		t.Error("AllSelected() = false after SelectAll(true)")
	}

	v.SelectAll(false)
	if got := v.SelectionSize(); got != 0 {
		t.Errorf("selection size after SelectAll(false) = %d, want 0", got)
	}
}

func TestSelectAllRespectsActiveFilter(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(20, "common", "errors"))
	v.SetCategory("errors")

	v.SelectAll(true)
	if got := v.SelectionSize(); got != 10 {
		t.Errorf("selection size = %d, want the 10 errors entries", got)
	}
	for _, id := range v.SelectedIDs() {
		e, _ := v.Entry(id)
		if e.Category != "errors" {
			t.Errorf("selected entry %d has category %q, want errors", id, e.Category)
		}
	}
}

func TestFilterChangeResetsPageAndSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change func(v *View)
	}{
		{"category change", func(v *View) { v.SetCategory("errors") }},
		{"query change", func(v *View) { v.SetQuery("english") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewView()
			v.SetEntries(testEntries(25, "common", "errors"))
			v.SetPage(2)
			v.SelectAll(true)

			tt.change(v)

			if got := v.Page(); got != 1 {
				t.Errorf("page after filter change = %d, want 1", got)
			}
			if got := v.SelectionSize(); got != 0 {
				t.Errorf("selection size after filter change = %d, want 0", got)
			}
		})
	}
}

func TestUnchangedFilterKeepsState(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(25))
	v.SetPage(2)
	if err := v.ToggleSelect(11); err != nil {
		t.Fatalf("ToggleSelect() error: %v", err)
	}

	// Setting the same values is not a change and must not reset anything.
	v.SetCategory(catalog.CategoryAll)
	v.SetQuery("")

	if got := v.Page(); got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
	if got := v.SelectionSize(); got != 1 {
		t.Errorf("selection size = %d, want 1", got)
	}
}

func TestPageChangeClearsSelection(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(25))
	if err := v.ToggleSelect(3); err != nil {
		t.Fatalf("ToggleSelect() error: %v", err)
	}

	v.NextPage()

	if got := v.Page(); got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
	if got := v.SelectionSize(); got != 0 {
		t.Errorf("selection size after page change = %d, want 0", got)
	}

	// Clamped no-op page moves keep the selection.
	v.SetPage(1)
	if err := v.ToggleSelect(3); err != nil {
		t.Fatalf("ToggleSelect() error: %v", err)
	}
	v.PrevPage()
	if got := v.SelectionSize(); got != 1 {
		t.Errorf("selection size after clamped page move = %d, want 1", got)
	}
}

func TestToggleSelectOutsideFilterFails(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(10, "common", "errors"))
	v.SetCategory("common")

	// Entry 2 is in the errors category, outside the active filter.
	if err := v.ToggleSelect(2); err != ErrNotFiltered {
		t.Errorf("ToggleSelect(filtered-out id) = %v, want ErrNotFiltered", err)
	}
	if err := v.ToggleSelect(1); err != nil {
		t.Errorf("ToggleSelect(visible id) = %v, want nil", err)
	}
}

func TestSetEntriesPrunesSelectionAndClampsPage(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(25))
	v.SetPage(3)
	v.SetPage(3) // no-op, still page 3
	v.SelectAll(true)

	// The data set shrinks underneath the view.
	v.SetEntries(testEntries(5))

	if got := v.Page(); got != 1 {
		t.Errorf("page after shrink = %d, want clamp to 1", got)
	}
	want := []int64{1, 2, 3, 4, 5}
	if got := v.SelectedIDs(); !slices.Equal(got, want) {
		t.Errorf("selection after shrink = %v, want pruned to %v", got, want)
	}
}

func TestCategoriesRecomputedActivePreserved(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(4, "common", "errors"))
	if got, want := v.Categories(), []string{"all", "common", "errors"}; !slices.Equal(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}

	v.SetCategory("errors")
	// New data no longer contains the active category; the filter stays as
	// the user set it rather than being silently reset.
	v.SetEntries(testEntries(4, "common"))

	if got := v.Category(); got != "errors" {
		t.Errorf("active category = %q, want preserved %q", got, "errors")
	}
	if got, want := v.Categories(), []string{"all", "common"}; !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if got := len(v.Filtered()); got != 0 {
		t.Errorf("filtered count = %d, want 0 while category is absent", got)
	}
}

func TestVisibleIsCurrentPageWindow(t *testing.T) {
	t.Parallel()

	v := NewView()
	v.SetEntries(testEntries(25))
	if got := v.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}

	v.SetPage(3)
	visible := v.Visible()
	if len(visible) != 5 || visible[0].ID != 21 {
		t.Errorf("page 3 visible = %d entries from id %d, want 5 from 21", len(visible), visible[0].ID)
	}
}

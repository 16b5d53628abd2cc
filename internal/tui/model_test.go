package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apiclient "github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/catalog"
	"github.com/keyline-dev/keyline/internal/editor"
)

// stubClient satisfies editor.SyncClient without a network.
type stubClient struct {
	batchCalls int
}

func (s *stubClient) UpdateEntry(_ context.Context, _ string, entryID int64, translations map[string]catalog.TranslationValue) (*catalog.Entry, error) {
	return &catalog.Entry{ID: entryID, Translations: translations}, nil
}

func (s *stubClient) UpdateEntriesBatch(_ context.Context, _ string, _ []apiclient.EntryUpdate) error {
	s.batchCalls++
	return nil
}

type nopInvalidator struct{}

func (nopInvalidator) InvalidateEntries(string) {}

func matrixEntries(n int) []catalog.Entry {
	entries := make([]catalog.Entry, n)
	for i := range n {
		entries[i] = catalog.Entry{
			ID:       int64(i + 1),
			Key:      fmt.Sprintf("key.%d", i+1),
			Category: "common",
			Translations: map[string]catalog.TranslationValue{
				"en": {Value: fmt.Sprintf("value %d", i+1)},
			},
		}
	}
	return entries
}

// newTestModel builds a Model over real controllers with stubbed transport
// and the entries already loaded.
func newTestModel(t *testing.T, entries []catalog.Entry) Model {
	t.Helper()

	client := &stubClient{}
	view := editor.NewView()
	session := editor.NewSession(client, view, nopInvalidator{}, "web", "alice", nil, nil)
	batch := editor.NewBatch(client, view, view, nopInvalidator{}, "web", "alice", nil, nil)
	entryCache := cache.New(func(context.Context, string) ([]catalog.Entry, error) {
		return entries, nil
	}, nil)

	m := New(Options{
		View:     view,
		Session:  session,
		Batch:    batch,
		Cache:    entryCache,
		Project:  catalog.Project{ID: "web", Name: "Web App"},
		Language: catalog.Language{Code: "en", Name: "English"},
		NoColor:  true,
	})
	// Categories store is optional in tests; persistCategoryCmd is only
	// produced when entries arrive, so feed them without the store.
	updated, _ := m.Update(entriesMsg{entries: entries})
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

func keyPress(m Model, s string) Model {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestEnterBeginsEditSeededWithCurrentValue(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(3))
	m = keyPress(m, "enter")

	if m.mode != modeEditCell {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	if got := m.session.State(); got != editor.SessionEditing {
		t.Errorf("session state = %v, want editing", got)
	}
	if got := m.input.Value(); got != "value 1" {
		t.Errorf("input seeded with %q, want %q", got, "value 1")
	}
}

func TestEscCancelsEdit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(3))
	m = keyPress(m, "enter")
	m = keyPress(m, "esc")

	if m.mode != modeBrowse {
		t.Errorf("mode = %v, want browse", m.mode)
	}
	if got := m.session.State(); got != editor.SessionIdle {
		t.Errorf("session state = %v, want idle", got)
	}
}

func TestSelectAllThenBatchOpens(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(25))
	m = keyPress(m, "a")

	if got := m.view.SelectionSize(); got != 25 {
		t.Fatalf("selection size = %d, want all 25 across pages", got)
	}

	m = keyPress(m, "b")
	if m.mode != modeBatch {
		t.Fatalf("mode = %v, want batch", m.mode)
	}
	if got := len(m.batch.IDs()); got != 25 {
		t.Errorf("batch covers %d ids, want 25", got)
	}
}

func TestBatchWithoutSelectionShowsHint(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(3))
	m = keyPress(m, "b")

	if m.mode != modeBrowse {
		t.Errorf("mode = %v, want browse when selection is empty", m.mode)
	}
	if !strings.Contains(m.status, "select entries first") {
		t.Errorf("status = %q, want selection hint", m.status)
	}
}

func TestPagingClearsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(25))
	m = keyPress(m, "space")
	if got := m.view.SelectionSize(); got != 1 {
		t.Fatalf("selection size = %d, want 1", got)
	}

	m = keyPress(m, "l")
	if got := m.view.Page(); got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
	if got := m.view.SelectionSize(); got != 0 {
		t.Errorf("selection size after page change = %d, want 0", got)
	}
}

func TestSearchFlowFiltersAndRenders(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(25))
	m = keyPress(m, "/")
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, want search", m.mode)
	}
	m = keyPress(m, "value 2")
	m = keyPress(m, "enter")

	if m.mode != modeBrowse {
		t.Fatalf("mode = %v, want browse after applying search", m.mode)
	}
	// "value 2" matches value 2 and values 20 through 25.
	if got := len(m.view.Filtered()); got != 7 {
		t.Errorf("filtered count = %d, want 7", got)
	}
	if got := m.view.Page(); got != 1 {
		t.Errorf("page = %d, want reset to 1", got)
	}

	out := m.View()
	if !strings.Contains(out, "key.20") {
		t.Errorf("view output does not list matching entry key.20:\n%s", out)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, matrixEntries(1))
	m = keyPress(m, "?")
	if m.mode != modeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	if out := m.View(); !strings.Contains(out, "keyline") {
		t.Errorf("help view missing title:\n%s", out)
	}
	m = keyPress(m, "esc")
	if m.mode != modeBrowse {
		t.Errorf("mode = %v, want browse after dismissing help", m.mode)
	}
}

func TestTruncateCountsDisplayCells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
	}{
		{"ascii cut", "translation.key.very.long", 10},
		{"wide runes cut", "設定メニューのラベル", 8},
		{"mixed cut", "menu.設定ラベル.title", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := truncate(tt.in, tt.width)
			if w := lipgloss.Width(got); w > tt.width {
				t.Errorf("truncate(%q, %d) renders %d cells: %q", tt.in, tt.width, w, got)
			}
			if !strings.HasSuffix(got, "…") {
				t.Errorf("truncate(%q, %d) = %q, want ellipsis suffix", tt.in, tt.width, got)
			}
		})
	}

	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q, want unchanged", got)
	}
	if got := truncate("設定", 4); got != "設定" {
		t.Errorf("truncate(wide fit, 4) = %q, want unchanged", got)
	}
}

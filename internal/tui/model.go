// Package tui implements the interactive translation matrix screen: a
// paginated entry table with inline cell editing, free-text search,
// category cycling, multi-select, and batch editing for the active
// language. All editing behavior lives in internal/editor; this package
// only translates key presses into controller calls and renders the result.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/catalog"
	"github.com/keyline-dev/keyline/internal/editor"
	"github.com/keyline-dev/keyline/internal/store"
)

// mode identifies which input surface currently owns the keyboard.
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEditCell
	modeBatch
	modeHelp
)

// Messages produced by asynchronous commands.
type (
	entriesMsg struct {
		entries []catalog.Entry
		err     error
	}
	cellSavedMsg struct{ err error }
	batchSavedMsg struct{ err error }
)

// Model is the matrix screen state. The editor.View owns filtering,
// pagination and selection; the Model only tracks UI concerns (cursor,
// focused input, spinner).
type Model struct {
	view    *editor.View
	session *editor.Session
	batch   *editor.Batch
	cache   *cache.EntryCache
	key     cache.Key

	project    catalog.Project
	lang       catalog.Language
	categories *store.CategoryStore

	input   textinput.Model
	pager   paginator.Model
	spin    spinner.Model
	keys    keyMap
	styles  styles
	helpDoc string

	mode     mode
	cursor   int // row index within the visible page
	batchRow int // index within the open batch's id list
	loading  bool
	err      error
	status   string
	width    int
	height   int
	quitting bool
}

// Options wires the matrix screen to its collaborators.
type Options struct {
	View       *editor.View
	Session    *editor.Session
	Batch      *editor.Batch
	Cache      *cache.EntryCache
	Project    catalog.Project
	Language   catalog.Language
	Categories *store.CategoryStore
	NoColor    bool
}

// New creates the matrix screen model. The first entry fetch is triggered
// by Init.
func New(opts Options) Model {
	input := textinput.New()
	input.CharLimit = 0

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = editor.PageSize

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	return Model{
		view:       opts.View,
		session:    opts.Session,
		batch:      opts.Batch,
		cache:      opts.Cache,
		key:        cache.EntriesKey(opts.Project.ID),
		project:    opts.Project,
		lang:       opts.Language,
		categories: opts.Categories,
		input:      input,
		pager:      pager,
		spin:       spin,
		keys:       defaultKeyMap(),
		styles:     newStyles(opts.NoColor),
		helpDoc:    renderHelp(),
		mode:       modeBrowse,
		loading:    true,
	}
}

// Init starts the spinner and the initial entry fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd(false))
}

// fetchCmd loads the project's entries, forcing a refetch when refresh is
// set. The result arrives as an entriesMsg.
func (m Model) fetchCmd(refresh bool) tea.Cmd {
	c, key := m.cache, m.key
	return func() tea.Msg {
		var (
			entries []catalog.Entry
			err     error
		)
		if refresh {
			entries, err = c.Refresh(context.Background(), key)
		} else {
			entries, err = c.Load(context.Background(), key)
		}
		return entriesMsg{entries: entries, err: err}
	}
}

// saveCellCmd persists the active cell draft.
func (m Model) saveCellCmd() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		return cellSavedMsg{err: s.Save(context.Background())}
	}
}

// saveBatchCmd persists the open batch.
func (m Model) saveBatchCmd() tea.Cmd {
	b := m.batch
	return func() tea.Msg {
		return batchSavedMsg{err: b.Save(context.Background())}
	}
}

// persistCategoryCmd writes the active category and recomputed category
// list through the persisted store. Store failures only surface as a
// status line; the in-memory view already changed.
func (m Model) persistCategoryCmd(active string, known []string) tea.Cmd {
	cs := m.categories
	if cs == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		if err := cs.SetActive(ctx, active); err != nil {
			return nil
		}
		_ = cs.SetKnown(ctx, known)
		return nil
	}
}

// visibleRow returns the entry under the cursor, if any.
func (m Model) visibleRow() (catalog.Entry, bool) {
	visible := m.view.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Entry{}, false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor inside the visible page after the filtered
// set or page changes.
func (m *Model) clampCursor() {
	n := len(m.view.Visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncPager mirrors the view's pagination into the paginator widget.
func (m *Model) syncPager() {
	m.pager.SetTotalPages(len(m.view.Filtered()))
	m.pager.Page = m.view.Page() - 1
}

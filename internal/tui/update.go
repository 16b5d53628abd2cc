package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyline-dev/keyline/internal/editor"
)

// Update routes messages to the surface that owns the keyboard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case entriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.view.SetEntries(msg.entries)
		m.syncPager()
		m.clampCursor()
		return m, m.persistCategoryCmd(m.view.Category(), m.view.Categories())

	case cellSavedMsg:
		if msg.err != nil {
			m.status = m.styles.errText.Render("save failed: " + msg.err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.status = m.styles.okText.Render("saved")
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(false))

	case batchSavedMsg:
		if msg.err != nil {
			m.status = m.styles.errText.Render("batch save failed: " + msg.err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.status = m.styles.okText.Render("batch saved")
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(false))

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEditCell:
			return m.updateEditCell(msg)
		case modeBatch:
			return m.updateBatch(msg)
		case modeHelp:
			m.mode = modeBrowse
			return m, nil
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

// busy reports whether a spinner-worthy operation is in flight.
func (m Model) busy() bool {
	return m.loading ||
		m.session.State() == editor.SessionSaving ||
		m.batch.State() == editor.BatchSaving
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Visible())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.view.PrevPage()
		m.syncPager()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.view.NextPage()
		m.syncPager()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "search key, description, or any translation"
		m.input.SetValue(m.view.Query())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Category):
		return m.cycleCategory()

	case key.Matches(msg, m.keys.Select):
		if row, ok := m.visibleRow(); ok {
			if err := m.view.ToggleSelect(row.ID); err != nil {
				m.status = m.styles.errText.Render(err.Error())
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.view.SelectAll(!m.view.AllSelected())
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.visibleRow()
		if !ok {
			return m, nil
		}
		if err := m.session.Begin(row.ID, m.lang.Code); err != nil {
			m.status = m.styles.errText.Render(err.Error())
			return m, nil
		}
		m.mode = modeEditCell
		m.status = ""
		m.input.Placeholder = ""
		m.input.SetValue(m.session.Draft())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.BatchEdit):
		if err := m.batch.Open(m.lang.Code); err != nil {
			if errors.Is(err, editor.ErrEmptySelection) {
				m.status = m.styles.errText.Render("select entries first (space / a)")
			} else {
				m.status = m.styles.errText.Render(err.Error())
			}
			return m, nil
		}
		m.mode = modeBatch
		m.batchRow = 0
		m.status = ""
		m.loadBatchInput()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(true))
	}
	return m, nil
}

// cycleCategory advances the category filter through the derived list,
// wrapping back to "all", and persists the choice.
func (m Model) cycleCategory() (tea.Model, tea.Cmd) {
	categories := m.view.Categories()
	if len(categories) < 2 {
		return m, nil
	}
	active := m.view.Category()
	next := categories[0]
	for i, c := range categories {
		if c == active && i+1 < len(categories) {
			next = categories[i+1]
			break
		}
	}
	m.view.SetCategory(next)
	m.syncPager()
	m.clampCursor()
	return m, m.persistCategoryCmd(next, categories)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.view.SetQuery(m.input.Value())
		m.syncPager()
		m.clampCursor()
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditCell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The cell is busy while its save is in flight; nothing to press.
	if m.session.State() == editor.SessionSaving {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if err := m.session.Cancel(); err != nil {
			m.status = m.styles.errText.Render(err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Save):
		if err := m.session.UpdateDraft(m.input.Value()); err != nil {
			m.status = m.styles.errText.Render(err.Error())
			return m, nil
		}
		return m, tea.Batch(m.spin.Tick, m.saveCellCmd())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	_ = m.session.UpdateDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateBatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The whole form is busy while the batch save is in flight.
	if m.batch.State() == editor.BatchSaving {
		return m, nil
	}
	ids := m.batch.IDs()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if err := m.batch.Cancel(); err != nil {
			m.status = m.styles.errText.Render(err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.RowPrev):
		m.commitBatchInput()
		if m.batchRow > 0 {
			m.batchRow--
		}
		m.loadBatchInput()
		return m, nil
	case key.Matches(msg, m.keys.RowNext):
		m.commitBatchInput()
		if m.batchRow < len(ids)-1 {
			m.batchRow++
		} else {
			m.batchRow = 0
		}
		m.loadBatchInput()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.commitBatchInput()
		return m, tea.Batch(m.spin.Tick, m.saveBatchCmd())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	_ = m.batch.UpdateDraft(m.batchID(), m.input.Value())
	return m, cmd
}

// batchID returns the entry id of the focused batch row.
func (m Model) batchID() int64 {
	ids := m.batch.IDs()
	if m.batchRow < 0 || m.batchRow >= len(ids) {
		return 0
	}
	return ids[m.batchRow]
}

// commitBatchInput writes the focused input back into its draft.
func (m *Model) commitBatchInput() {
	if id := m.batchID(); id != 0 {
		_ = m.batch.UpdateDraft(id, m.input.Value())
	}
}

// loadBatchInput seeds the input with the focused row's draft.
func (m *Model) loadBatchInput() {
	if id := m.batchID(); id != 0 {
		if draft, ok := m.batch.Draft(id); ok {
			m.input.SetValue(draft)
			m.input.CursorEnd()
		}
	}
}

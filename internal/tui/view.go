package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	keyColWidth   = 28
	catColWidth   = 12
	valueColWidth = 40
)

// View renders the matrix screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeHelp {
		return m.helpDoc
	}

	var b strings.Builder

	title := fmt.Sprintf("%s · %s", m.project.Name, m.lang.Code)
	b.WriteString(m.styles.title.Render(title))
	if m.busy() {
		b.WriteString(" " + m.spin.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(m.filterLine()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.errText.Render("failed to load entries: " + m.err.Error()))
		b.WriteString("\n" + m.styles.muted.Render("press r to retry, q to quit") + "\n")
	case m.mode == modeBatch:
		b.WriteString(m.batchView())
	default:
		b.WriteString(m.tableView())
	}

	if m.mode == modeSearch {
		b.WriteString("\n" + m.styles.header.Render("search: ") + m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.styles.muted.Render("?: help · q: quit") + "\n")
	return b.String()
}

// filterLine summarizes the active filter, pagination and selection.
func (m Model) filterLine() string {
	parts := []string{
		fmt.Sprintf("category: %s", m.view.Category()),
	}
	if q := m.view.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	parts = append(parts, fmt.Sprintf("page %d/%d %s", m.view.Page(), m.view.PageCount(), m.pager.View()))
	if n := m.view.SelectionSize(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	return strings.Join(parts, " · ")
}

// tableView renders the visible page as rows of key / category / value.
func (m Model) tableView() string {
	var b strings.Builder

	header := fmt.Sprintf("  %-*s %-*s %s", keyColWidth, "KEY", catColWidth, "CATEGORY", strings.ToUpper(m.lang.Code))
	b.WriteString(m.styles.header.Render(header) + "\n")

	visible := m.view.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.muted.Render("  no entries match the current filter") + "\n")
		return b.String()
	}

	editingID, editingLang, editing := m.session.Active()
	for i, e := range visible {
		marker := "  "
		if m.view.Selected(e.ID) {
			marker = m.styles.selected.Render("✓ ")
		}

		value := truncate(e.Value(m.lang.Code), valueColWidth)
		if value == "" {
			value = m.styles.muted.Render("—")
		}

		line := fmt.Sprintf("%-*s %-*s %s",
			keyColWidth, truncate(e.Key, keyColWidth),
			catColWidth, truncate(e.Category, catColWidth),
			value)

		switch {
		case m.mode == modeEditCell && editing && e.ID == editingID && editingLang == m.lang.Code:
			line = fmt.Sprintf("%-*s %-*s %s",
				keyColWidth, truncate(e.Key, keyColWidth),
				catColWidth, truncate(e.Category, catColWidth),
				m.input.View())
			b.WriteString(marker + m.styles.cursor.Render("") + line + "\n")
		case i == m.cursor:
			b.WriteString(marker + m.styles.cursor.Render(line) + "\n")
		default:
			b.WriteString(marker + m.styles.row.Render(line) + "\n")
		}
	}
	return b.String()
}

// batchView renders the open batch form, one row per selected entry.
func (m Model) batchView() string {
	var b strings.Builder

	ids := m.batch.IDs()
	heading := fmt.Sprintf("batch edit · %d entries · %s", len(ids), m.batch.Language())
	b.WriteString(m.styles.badge.Render(heading) + "\n\n")

	for i, id := range ids {
		entry, ok := m.view.Entry(id)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%-*s ", keyColWidth, truncate(entry.Key, keyColWidth))
		if i == m.batchRow {
			b.WriteString(m.styles.cursor.Render(label) + m.input.View() + "\n")
			continue
		}
		draft, _ := m.batch.Draft(id)
		if draft == "" {
			draft = m.styles.muted.Render("—")
		}
		b.WriteString(label + draft + "\n")
	}

	b.WriteString("\n" + m.styles.muted.Render("tab/↑↓: row · enter: save all · esc: cancel") + "\n")
	return b.String()
}

// truncate shortens s to width display cells, appending an ellipsis when
// cut. Wide runes count by their cell width, not by rune.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	cells := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if cells+w > width-1 {
			break
		}
		b.WriteRune(r)
		cells += w
	}
	return b.String() + "…"
}

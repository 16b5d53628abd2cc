package tui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# keyline matrix

Browse and edit one language column of the active project's catalog.

## Browsing

| Key | Action |
|-----|--------|
| ↑/k ↓/j | move between rows |
| ←/h →/l | previous / next page (clears selection) |
| / | search key, description, or any language's value |
| c | cycle the category filter |
| r | refresh from the server |

## Selecting and editing

| Key | Action |
|-----|--------|
| space | select / deselect the row |
| a | select all filtered entries, or none |
| enter | edit the row's cell inline |
| b | batch edit the selected entries |

Inside an edit, *enter* saves and *esc* cancels. A failed save keeps your
draft so you can retry. In a batch form, *tab* and the arrow keys move
between rows; *enter* submits every row in one request.
`

// renderHelp renders the help overlay once at startup. Rendering failures
// fall back to the raw markdown.
func renderHelp() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the matrix screen key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Search    key.Binding
	Category  key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Edit      key.Binding
	BatchEdit key.Binding
	Refresh   key.Binding
	Save      key.Binding
	Cancel    key.Binding
	RowPrev   key.Binding
	RowNext   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all / none")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		BatchEdit: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "batch edit selection")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		RowPrev:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "previous row")),
		RowNext:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next row")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

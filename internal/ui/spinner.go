// Package ui provides terminal helpers shared by CLI commands: headless
// mode detection and an indeterminate spinner that degrades to plain log
// lines without a TTY.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows activity while a command waits on the network.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// Progress creates spinners appropriate for the current terminal state.
type Progress struct {
	headless *HeadlessManager
	noColor  bool
	writer   io.Writer
}

// NewProgress creates a Progress writing to os.Stdout.
func NewProgress(hm *HeadlessManager, noColor bool) *Progress {
	return &Progress{headless: hm, noColor: noColor, writer: os.Stdout}
}

// newProgressWriter creates a Progress with a custom writer (for testing).
func newProgressWriter(hm *HeadlessManager, noColor bool, w io.Writer) *Progress {
	return &Progress{headless: hm, noColor: noColor, writer: w}
}

// Spinner creates an indeterminate spinner. In headless or no-color mode
// it prints the title as a log line instead of animating.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.noColor {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(title, p.noColor)
}

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(title string, noColor bool) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !noColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner runs the animated spinner in its own tea program.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(title string, noColor bool) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(title, noColor))
	s := &interactiveSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// headlessSpinner prints the title as plain log lines.
type headlessSpinner struct {
	title   string
	writer  io.Writer
	stopped bool
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{title: title, writer: w}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

func (s *headlessSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

func (s *headlessSpinner) Stop() {
	s.stopped = true
}

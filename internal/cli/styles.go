package cli

import "github.com/charmbracelet/lipgloss"

// CLI output styles shared by all commands.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symActive() string  { return cliPrimary.Render("●") }

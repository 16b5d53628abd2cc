package tui

import "github.com/charmbracelet/lipgloss"

// styles groups the matrix screen's lipgloss styles.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	row      lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	okText   lipgloss.Style
	errText  lipgloss.Style
	badge    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain.Bold(true), header: plain.Bold(true),
			row: plain, cursor: plain.Reverse(true), selected: plain.Bold(true),
			muted: plain, okText: plain, errText: plain, badge: plain,
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}),
		row:      lipgloss.NewStyle(),
		cursor:   lipgloss.NewStyle().Reverse(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}),
		okText:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}),
	}
}

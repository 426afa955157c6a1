package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (cyan) for section headers, readable on any theme
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (green) for usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (gray) so descriptions recede
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// SpeakerStyle marks the assistant's name in the terminal shell
	SpeakerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// ErrorStyle for turn failures surfaced in the terminal shell
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

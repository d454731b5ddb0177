package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorSurface lipgloss.Color = "#45475a"
	colorGreen   lipgloss.Color = "#a6e3a1"
	colorRed     lipgloss.Color = "#f38ba8"
	colorYellow  lipgloss.Color = "#f9e2af"
	colorBlue    lipgloss.Color = "#89b4fa"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	transcriptStyle = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorSubtext)
	inputStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface).Padding(0, 1)
	attachmentStyle = lipgloss.NewStyle().Foreground(colorYellow)
	busyStyle       = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle         = lipgloss.NewStyle().Foreground(colorGreen)
	errStyle        = lipgloss.NewStyle().Foreground(colorRed)
	helpStyle       = lipgloss.NewStyle().Foreground(colorSubtext).MarginTop(1)
)

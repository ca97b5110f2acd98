package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	stylePrompt  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleStatus  = lipgloss.NewStyle().Foreground(colorGray)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGray).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorDim).
			BorderBottom(true)
	styleCell     = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

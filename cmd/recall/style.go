package main

import "github.com/charmbracelet/lipgloss"

// Terminal styles. Colors degrade to plain text when output is not a TTY.
var styles = struct {
	Label   lipgloss.Style
	Front   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style
}{
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4")),
	Front:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	Title:   lipgloss.NewStyle().Bold(true),
}

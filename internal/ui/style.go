package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/CNA-DataTeam/CNA-Logistics-App/timer"
)

var (
	phaseRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	phasePausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	phaseEndedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	phaseIdleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PhaseLabel renders a colored label for a timer phase.
func PhaseLabel(phase timer.Phase) string {
	switch phase {
	case timer.PhaseRunning:
		return phaseRunningStyle.Render(string(phase))
	case timer.PhasePaused:
		return phasePausedStyle.Render(string(phase))
	case timer.PhaseEnded:
		return phaseEndedStyle.Render(string(phase))
	default:
		return phaseIdleStyle.Render(string(timer.PhaseIdle))
	}
}

// Header renders a bold section header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Success renders confirmation text.
func Success(text string) string {
	return successStyle.Render(text)
}

// Warn renders cautionary text.
func Warn(text string) string {
	return warnStyle.Render(text)
}

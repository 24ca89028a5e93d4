// Package tui renders bell generation progress in the terminal.
// It includes a Bubble Tea model for interactive terminals and a plain
// line renderer for pipes and logs, sharing one set of lipgloss styles.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent colors used throughout the TUI
var (
	PrimaryColor = lipgloss.Color("#00D7FF") // Cyan - in-progress states
	SuccessColor = lipgloss.Color("#5AF78E") // Green - written cues
	ErrorColor   = lipgloss.Color("#FF5C57") // Red - failed cues
	MutedColor   = lipgloss.Color("#6C7086") // Gray - pending, muted text
	TextColor    = lipgloss.Color("#CDD6F4") // Light gray - primary text
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	cueNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	mutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
	errorStyle = lipgloss.NewStyle().Foreground(ErrorColor)

	summaryCompleteStyle = lipgloss.NewStyle().Bold(true).Foreground(SuccessColor)
	summaryErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
)

// Status badge styles
var (
	statusWrittenStyle    = lipgloss.NewStyle().Foreground(SuccessColor)
	statusInProgressStyle = lipgloss.NewStyle().Foreground(PrimaryColor)
	statusPendingStyle    = lipgloss.NewStyle().Foreground(MutedColor)
	statusFailedStyle     = lipgloss.NewStyle().Foreground(ErrorColor)
)

// Status icons
const (
	IconWritten    = "✓"
	IconInProgress = "●"
	IconPending    = "○"
	IconFailed     = "✗"
)

// CueStatus is the generation state of a single cue.
type CueStatus int

const (
	StatusPending CueStatus = iota
	StatusInProgress
	StatusWritten
	StatusFailed
)

// GetStatusIcon returns the styled icon for a cue status.
func GetStatusIcon(status CueStatus) string {
	switch status {
	case StatusWritten:
		return statusWrittenStyle.Render(IconWritten)
	case StatusInProgress:
		return statusInProgressStyle.Render(IconInProgress)
	case StatusFailed:
		return statusFailedStyle.Render(IconFailed)
	default:
		return statusPendingStyle.Render(IconPending)
	}
}

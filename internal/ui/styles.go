// Package ui holds the terminal styles shared by command output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Muted   = lipgloss.Color("#6B7280") // Gray
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#EF4444") // Red

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().Bold(true)

	Faint = lipgloss.NewStyle().Foreground(Muted)

	okMark   = lipgloss.NewStyle().Foreground(Success).Render("[ OK ]")
	warnMark = lipgloss.NewStyle().Foreground(Warning).Render("[WARN]")
	failMark = lipgloss.NewStyle().Foreground(Danger).Render("[FAIL]")
	infoMark = lipgloss.NewStyle().Foreground(Muted).Render("[INFO]")
)

// OK prefixes msg with a success marker.
func OK(msg string) string { return okMark + " " + msg }

// Warn prefixes msg with a warning marker.
func Warn(msg string) string { return warnMark + " " + msg }

// Fail prefixes msg with an error marker.
func Fail(msg string) string { return failMark + " " + msg }

// Info prefixes msg with an informational marker.
func Info(msg string) string { return infoMark + " " + msg }

// Rule is the separator printed around report blocks.
func Rule() string { return Faint.Render("==================================================") }

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleMask = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	styleTopic = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	styleGuessed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleReward = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleStrike = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindInfo lineKind = iota
	kindSolved
	kindReward
	kindStrike
	kindSystem
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Solved:"):
		return kindSolved
	case strings.HasPrefix(line, "+$"),
		strings.HasPrefix(line, "Milestone"),
		strings.HasPrefix(line, "Prestiged"):
		return kindReward
	case strings.Contains(line, "Strike"),
		strings.HasPrefix(line, "Too many strikes"):
		return kindStrike
	default:
		return kindInfo
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSolved:
		return styleMask.Render(line)
	case kindReward:
		return styleReward.Render(line)
	case kindStrike:
		return styleStrike.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	default:
		return styleInfo.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// boardHeight is the fixed number of lines the puzzle board occupies:
// topic, mask, and the alphabet row.
const boardHeight = 3

// renderBoard produces the live puzzle panel shown above the status bar.
func (m Model) renderBoard() string {
	eng := m.engine

	if eng.Complete() {
		return styleTopic.Render("Catalog complete") + "\n" +
			styleMask.Render("Every puzzle is solved.") + "\n" +
			styleSystem.Render("Type 'new' to start a fresh run.")
	}

	topic := styleTopic.Render("Topic: " + eng.Topic())

	mask := styleMask.Render(spacedMask(eng.Mask()))

	var alphabet strings.Builder
	for c := 'A'; c <= 'Z'; c++ {
		if eng.HasGuessed(c) {
			alphabet.WriteString(styleGuessed.Render(string(c)))
		} else {
			alphabet.WriteString(styleInfo.Render(string(c)))
		}
		if c != 'Z' {
			alphabet.WriteRune(' ')
		}
	}

	return topic + "\n" + mask + "\n" + alphabet.String()
}

// spacedMask widens a mask for readability: each letter or blank gets a
// trailing space, word gaps get three.
func spacedMask(mask string) string {
	var b strings.Builder
	for _, r := range mask {
		if r == ' ' {
			b.WriteString("   ")
			continue
		}
		b.WriteRune(r)
		b.WriteRune(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// renderStatusBar produces a full-width inverted status line showing
// streak, money, strikes, and the star balance once unlocked.
func (m Model) renderStatusBar() string {
	eng := m.engine

	left := fmt.Sprintf(" Streak: %d | $%d | Strikes: %d/%d",
		eng.Streak(), eng.Money(), eng.StrikeCount(), eng.MaxStrikes())
	if eng.BonusStrikes() > 0 {
		left += fmt.Sprintf(" +%d", eng.BonusStrikes())
	}
	if eng.FreeGuessActive() {
		left += " | Free guess"
	}

	right := fmt.Sprintf("Pool: %d ", eng.PoolRemaining())
	if eng.StarsDisplayUnlocked() {
		right = fmt.Sprintf("Stars: %d (+%d) | %s", eng.Stars(), eng.StarBuffer(), right)
	}
	if eng.CanPrestige() {
		right = "PRESTIGE READY | " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with contextual hints on
// the left and the visitor counter on the right.
func RenderStatusBar(width int, hints string, visitors int64) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := ""
	if visitors > 0 {
		right = fmt.Sprintf("visit #%d ", visitors)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

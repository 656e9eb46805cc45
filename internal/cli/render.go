package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	okStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	overStyle = lipgloss.NewStyle().Foreground(ColorRed)
)

// CategoryColor returns the display color for an expense category.
func CategoryColor(c model.Category) lipgloss.Color {
	switch c {
	case model.Need:
		return ColorRed
	case model.Want:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// StatusStyle returns the style for an analysis status.
func StatusStyle(s model.AnalysisStatus) lipgloss.Style {
	switch s {
	case model.StatusOver:
		return overStyle
	case model.StatusUnder:
		return warnStyle
	default:
		return okStyle
	}
}

// ShareStyle bands a per-expense salary share: small shares green, middling
// amber, heavy red.
func ShareStyle(pct float64) lipgloss.Style {
	switch {
	case pct > 15:
		return overStyle
	case pct > 5:
		return warnStyle
	default:
		return okStyle
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderCategoryBar renders one horizontal bar of a category breakdown,
// scaled against the largest category total.
func RenderCategoryBar(c model.Category, lang model.Language, value, maxValue float64, maxWidth int) string {
	label := fmt.Sprintf("%-22s", c.Label(lang))
	barLen := 0
	if maxValue > 0 {
		barLen = int(value / maxValue * float64(maxWidth))
	}
	if barLen < 0 {
		barLen = 0
	}
	bar := lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %s %s %s", mutedStyle.Render(label), bar, FormatMoney(value))
}

// RenderTargetBar renders an actual-vs-target pair for one analysis card.
func RenderTargetBar(card model.CategoryAnalysis, lang model.Language, maxWidth int) string {
	scale := func(pct float64) int {
		n := int(pct / 100 * float64(maxWidth))
		if n < 0 {
			n = 0
		}
		if n > maxWidth {
			n = maxWidth
		}
		return n
	}

	label := fmt.Sprintf("%-22s", card.Category.Label(lang))
	actual := StatusStyle(card.Status).Render(strings.Repeat("█", scale(card.ActualPct)))
	target := dimStyle.Render(strings.Repeat("▒", scale(card.TargetPct)))

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s %s\n", mutedStyle.Render(label), actual, FormatPercent(card.ActualPct))
	fmt.Fprintf(&b, "  %s %s %s\n", mutedStyle.Render(strings.Repeat(" ", 22)), target,
		mutedStyle.Render("target "+FormatPercent(card.TargetPct)))
	return b.String()
}

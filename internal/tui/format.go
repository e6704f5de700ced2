package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/countdown/internal/config"
)

const glyphRows = 5

var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// styleColons renders the plain display string with colons picked out.
func styleColons(display string, digits, colon lipgloss.Style) string {
	parts := strings.Split(display, ":")
	for i, p := range parts {
		parts[i] = digits.Render(p)
	}
	return strings.Join(parts, colon.Render(":"))
}

// bigClock renders display in block glyphs. Colons use the colon style.
func bigClock(display string, digits, colon lipgloss.Style) string {
	var rows [glyphRows]strings.Builder
	for i, r := range display {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		style := digits
		if r == ':' {
			style = colon
		}
		for row := 0; row < glyphRows; row++ {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(style.Render(g[row]))
		}
	}
	out := make([]string, glyphRows)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return strings.Join(out, "\n")
}

// bigClockWidth is the printed width of display in block glyphs.
func bigClockWidth(display string) int {
	return lipgloss.Width(bigClock(display, lipgloss.NewStyle(), lipgloss.NewStyle()))
}

func truncate(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	// visible width, ANSI sequences and wide runes accounted for
	maxw := 0
	for _, ln := range lines {
		if vw := lipgloss.Width(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// ItemLines renders 0-based numbered rows for a panel, " 0. ⠿ Item 1" under
// the classic theme. The number is the index the editor operations take.
func ItemLines(contents []string) []string {
	t := Current()
	if len(contents) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(contents))
	for i, c := range contents {
		idx := fmt.Sprintf("%2d.", i)
		out = append(out, fmt.Sprintf("%s %s %s", C(dim, idx), C(t.Muted, t.Handle), c))
	}
	return out
}

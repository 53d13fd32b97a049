package ui

import (
	"fmt"
	"strings"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Armed                                  string
	Handle, Grab, ArmedMark, Cursor        string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Armed: fgYellow,
		Handle: "⠿", Grab: "⇅", ArmedMark: "✖", Cursor: ">",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// SetTheme switches the current theme. Unknown names are an error and leave it unchanged.
func SetTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Armed: "\033[93m",
			Handle: "◆", Grab: "↕", ArmedMark: "✖", Cursor: "▶",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:   "mono",
			Handle: "=", Grab: "*", ArmedMark: "x", Cursor: ">",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	case "", "classic":
		current = classic()
	default:
		return fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(Themes, "|"))
	}
	return nil
}

// Expose what renderers need
func Current() Theme { return current }

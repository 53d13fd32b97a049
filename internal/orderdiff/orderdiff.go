// Package orderdiff renders a line diff between two orderings of item contents.
package orderdiff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	faint   = lipgloss.NewStyle().Faint(true)
)

// NoChanges is returned by Render when both orderings are identical.
const NoChanges = "No changes"

// Line is one row of the diff. Op is '-', '+' or ' '.
type Line struct {
	Op   byte
	Text string
}

// Lines computes a line-level diff of before against after.
func Lines(before, after []string) []Line {
	d := dmp.New()
	a, b, table := d.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)

	var out []Line
	for _, df := range diffs {
		op := byte(' ')
		switch df.Type {
		case dmp.DiffDelete:
			op = '-'
		case dmp.DiffInsert:
			op = '+'
		}
		for _, ln := range strings.SplitAfter(df.Text, "\n") {
			if ln == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return out
}

// Render formats the diff, styled unless noColor is set.
func Render(before, after []string, noColor bool) string {
	lines := Lines(before, after)
	changed := false
	for _, l := range lines {
		if l.Op != ' ' {
			changed = true
			break
		}
	}
	if !changed {
		return NoChanges
	}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		row := string(l.Op) + " " + l.Text
		if noColor {
			sb.WriteString(row)
			continue
		}
		switch l.Op {
		case '-':
			sb.WriteString(delLine.Render(row))
		case '+':
			sb.WriteString(addLine.Render(row))
		default:
			sb.WriteString(faint.Render(row))
		}
	}
	return sb.String()
}

// every line, including the last, ends in \n so equal tails compare equal
func joinLines(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return strings.Join(ss, "\n") + "\n"
}

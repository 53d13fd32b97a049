// Package script drives an editor from a plain-text list of operations.
// It stands in for the drag and render surfaces when there is no terminal:
//
//	move 0 2        # drag item 0, drop at position 2
//	move 1 -        # drag item 1, release outside the list
//	add
//	edit 1 new text
//	delete 3        # first press arms, second press on the same row deletes
//	cancel
//	emit
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/relist/internal/editor"
)

// ErrUnknownOp is wrapped by SyntaxError for unrecognised verbs.
var ErrUnknownOp = errors.New("unknown op")

// Kind is an operation verb.
type Kind string

const (
	OpMove   Kind = "move"
	OpAdd    Kind = "add"
	OpEdit   Kind = "edit"
	OpDelete Kind = "delete"
	OpCancel Kind = "cancel"
	OpEmit   Kind = "emit"
)

// Op is one parsed line. Dest is nil for a move released outside the list.
type Op struct {
	Kind  Kind
	Index int
	Dest  *int
	Text  string
}

func (o Op) String() string {
	switch o.Kind {
	case OpMove:
		if o.Dest == nil {
			return fmt.Sprintf("move %d -", o.Index)
		}
		return fmt.Sprintf("move %d %d", o.Index, *o.Dest)
	case OpEdit:
		return fmt.Sprintf("edit %d %s", o.Index, o.Text)
	case OpDelete:
		return fmt.Sprintf("delete %d", o.Index)
	default:
		return string(o.Kind)
	}
}

// SyntaxError reports a line that could not be parsed.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse reads one op per line. Blank lines and lines starting with # are
// skipped. The text of an edit is taken verbatim, # and repeated spaces included.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		op, ok, err := parseLine(sc.Text())
		if err != nil {
			return nil, &SyntaxError{Line: n, Text: sc.Text(), Err: err}
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

// ParseArgs parses each argument as one line, as given on the command line.
func ParseArgs(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, ok, err := parseLine(a)
		if err != nil {
			return nil, &SyntaxError{Text: a, Err: err}
		}
		if ok {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// ParseLine parses a single op.
func ParseLine(line string) (Op, error) {
	op, ok, err := parseLine(line)
	if err != nil {
		return Op{}, &SyntaxError{Text: line, Err: err}
	}
	if !ok {
		return Op{}, &SyntaxError{Text: line, Err: errors.New("empty line")}
	}
	return op, nil
}

func parseLine(line string) (Op, bool, error) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] == '#' {
		return Op{}, false, nil
	}
	head, tail := cutBlank(trimmed)
	if Kind(strings.ToLower(head)) == OpEdit {
		return parseEdit(tail)
	}

	// Only edit carries free text; the other verbs allow a trailing comment.
	if i := strings.IndexByte(trimmed, '#'); i >= 0 {
		trimmed = trimmed[:i]
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return Op{}, false, nil
	}
	verb, rest := Kind(strings.ToLower(fields[0])), fields[1:]

	switch verb {
	case OpAdd, OpCancel, OpEmit:
		if len(rest) != 0 {
			return Op{}, false, fmt.Errorf("%s takes no arguments", verb)
		}
		return Op{Kind: verb}, true, nil

	case OpMove:
		if len(rest) != 2 {
			return Op{}, false, errors.New("usage: move <src> <dst|->")
		}
		src, err := atoi(rest[0])
		if err != nil {
			return Op{}, false, err
		}
		op := Op{Kind: OpMove, Index: src}
		if rest[1] != "-" {
			dst, err := atoi(rest[1])
			if err != nil {
				return Op{}, false, err
			}
			op.Dest = &dst
		}
		return op, true, nil

	case OpDelete:
		if len(rest) != 1 {
			return Op{}, false, errors.New("usage: delete <index>")
		}
		idx, err := atoi(rest[0])
		if err != nil {
			return Op{}, false, err
		}
		return Op{Kind: OpDelete, Index: idx}, true, nil
	}
	return Op{}, false, fmt.Errorf("%w: %s", ErrUnknownOp, fields[0])
}

// parseEdit takes "<index> <text>": everything after the single separator
// following the index is the new content, kept byte for byte.
func parseEdit(args string) (Op, bool, error) {
	idxField, text := cutBlank(strings.TrimLeft(args, " \t"))
	if idxField == "" {
		return Op{}, false, errors.New("usage: edit <index> <text...>")
	}
	idx, err := atoi(idxField)
	if err != nil {
		return Op{}, false, err
	}
	return Op{Kind: OpEdit, Index: idx, Text: text}, true, nil
}

// cutBlank splits s around its first space or tab.
func cutBlank(s string) (before, after string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return n, nil
}

// Run applies ops in order. Each emit writes the joined contents plus a
// newline to out. It stops at the first failing op.
func Run(ed *editor.Editor, ops []Op, out io.Writer, sep string) error {
	for i, op := range ops {
		if err := apply(ed, op, out, sep); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op, err)
		}
	}
	return nil
}

func apply(ed *editor.Editor, op Op, out io.Writer, sep string) error {
	switch op.Kind {
	case OpMove:
		return ed.Reorder(op.Index, op.Dest)
	case OpAdd:
		ed.AddItem()
		return nil
	case OpEdit:
		return ed.EditContent(op.Index, op.Text)
	case OpDelete:
		_, err := ed.ToggleDeleteSelection(op.Index)
		return err
	case OpCancel:
		ed.CancelDelete()
		return nil
	case OpEmit:
		_, err := fmt.Fprintln(out, ed.Emit(sep))
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownOp, op.Kind)
}

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/relist/internal/model"
	"github.com/idilsaglam/relist/internal/ui"
)

// rowItem adapts model.Item to bubbles/list.Item, carrying per-row state.
type rowItem struct {
	model.Item
	armed   bool
	grabbed bool
}

func (r rowItem) FilterValue() string { return r.Content }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rowItem)
	if !ok {
		return
	}
	t := ui.Current()

	handle := mutedStyle.Render(t.Handle)
	text := r.Content
	if text == "" {
		text = mutedStyle.Render("(empty)")
	}
	suffix := ""
	switch {
	case r.grabbed:
		handle = grabStyle.Render(t.Grab)
		text = grabStyle.Render(text)
	case r.armed:
		text = armedStyle.Render(text)
		suffix = " " + errorStyle.Render(t.ArmedMark+" press d again to delete")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(t.Cursor) + " "
	}
	fmt.Fprint(w, prefix+handle+" "+text+suffix)
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Grab    key.Binding
	Drop    key.Binding
	Release key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Disarm  key.Binding
	Emit    key.Binding
	Copy    key.Binding
	Diff    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Grab:    key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m/space", "grab")),
		Drop:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Release: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "release")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d d", "delete")),
		Disarm:  key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "keep")),
		Emit:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print order")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy order")),
		Diff:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "diff")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Add, k.Edit, k.Delete, k.Emit, k.Copy, k.Diff}
}

func (k keyMap) grabHelp() []key.Binding {
	return []key.Binding{k.Drop, k.Release}
}

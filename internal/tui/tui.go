// Package tui is the interactive surface over an editor.Editor: it renders
// the list, emulates drag and drop with the keyboard and routes edits,
// additions and deletions to the editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/relist/internal/editor"
	"github.com/idilsaglam/relist/internal/orderdiff"
)

// Options tune the interactive session.
type Options struct {
	Separator string // joins contents on print/copy
	Clipboard bool   // enable the copy key
	AltScreen bool
	NoColor   bool
	Logger    *zap.Logger
}

// Result is what the session leaves behind once the program exits.
type Result struct {
	Emitted []string // every printed order, oldest first
}

type mode int

const (
	modeBrowse mode = iota
	modeGrab        // an item is lifted and follows the cursor
	modeEdit        // inline edit of one row
)

type modelTUI struct {
	ed   *editor.Editor
	list list.Model
	ti   textinput.Model
	keys keyMap
	opts Options
	log  *zap.Logger

	seed    []string         // contents at start, for the diff view
	changes *[]editor.Change // filled by the editor observer, drained by sync

	mode mode

	// grab
	grabFrom int

	// inline edit
	editIndex int
	editOrig  string

	showDiff bool
	status   string
	emitted  []string
	copyFn   func(string) error

	width, height int
}

// Run starts the Bubble Tea program and returns once the user quits.
func Run(ed *editor.Editor, opts Options) (Result, error) {
	m := newModel(ed, opts)

	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, popts...)
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return Result{}, nil
	}
	return Result{Emitted: fm.emitted}, nil
}

func newModel(ed *editor.Editor, opts Options) modelTUI {
	if opts.Separator == "" {
		opts.Separator = "\n"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := defaultKeyMap()
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle

	m := modelTUI{
		ed:      ed,
		list:    l,
		keys:    keys,
		opts:    opts,
		log:     logger,
		seed:    ed.Contents(),
		changes: new([]editor.Change),
		width:   80,
		height:  24,
	}
	l.AdditionalShortHelpKeys = m.helpKeys
	l.AdditionalFullHelpKeys = m.helpKeys
	m.list = l

	q := m.changes
	ed.OnChange(func(c editor.Change) { *q = append(*q, c) })

	if opts.Clipboard {
		m.copyFn = clipboard.WriteAll
	}

	// shared text input for inline edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Item text..."

	m.resize()
	m.refresh()
	return m
}

// helpKeys extends the list's help with the editing bindings.
func (m modelTUI) helpKeys() []key.Binding {
	return m.keys.browseHelp()
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeEdit:
		return m.updateEdit(msg)
	case modeGrab:
		return m.updateGrab(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Grab):
		if m.ed.Len() == 0 {
			return m, nil
		}
		m.mode = modeGrab
		m.grabFrom = m.list.Index()
		m.status = "moving: arrows pick a spot, enter drops, esc puts it back"
		m.refresh()
		return m, nil

	case key.Matches(km, m.keys.Add):
		it := m.ed.AddItem()
		m.status = "added " + it.Content
		m.sync()
		return m, nil

	case key.Matches(km, m.keys.Edit):
		i := m.list.Index()
		if i < 0 || i >= m.ed.Len() {
			return m, nil
		}
		m.mode = modeEdit
		m.editIndex = i
		m.editOrig = m.ed.Items()[i].Content
		m.ti.SetValue(m.editOrig)
		m.ti.CursorEnd()
		m.status = ""
		m.resize()
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.Delete):
		i := m.list.Index()
		if i < 0 || i >= m.ed.Len() {
			return m, nil
		}
		out, err := m.ed.ToggleDeleteSelection(i)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		switch out {
		case editor.OutcomeDeleted:
			m.status = "deleted"
		default:
			m.status = "press d again to delete, x to keep"
		}
		m.sync()
		return m, nil

	case key.Matches(km, m.keys.Disarm):
		if m.ed.CancelDelete() {
			m.status = "kept"
			m.sync()
		}
		return m, nil

	case key.Matches(km, m.keys.Emit):
		text := m.emit()
		m.status = fmt.Sprintf("printed %d items", m.ed.Len())
		m.log.Debug("emit requested", zap.Int("bytes", len(text)))
		return m, nil

	case key.Matches(km, m.keys.Copy):
		if m.copyFn == nil {
			m.status = "clipboard disabled"
			return m, nil
		}
		text := m.emit()
		if err := m.copyFn(text); err != nil {
			m.fail(fmt.Errorf("copy: %w", err))
			return m, nil
		}
		m.status = fmt.Sprintf("copied %d items", m.ed.Len())
		return m, nil

	case key.Matches(km, m.keys.Diff):
		m.showDiff = !m.showDiff
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateGrab(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Drop):
		dst := m.list.Index()
		m.mode = modeBrowse
		if err := m.ed.Reorder(m.grabFrom, &dst); err != nil {
			m.fail(err)
			m.refresh()
			return m, nil
		}
		m.status = ""
		m.sync()
		m.list.Select(dst)
		return m, nil

	case key.Matches(km, m.keys.Release):
		// released outside any drop target
		m.mode = modeBrowse
		if err := m.ed.Reorder(m.grabFrom, nil); err != nil {
			m.fail(err)
			m.refresh()
			return m, nil
		}
		m.status = ""
		m.refresh()
		m.list.Select(m.grabFrom)
		return m, nil
	}

	nav := m.list.KeyMap
	if key.Matches(km, nav.CursorUp, nav.CursorDown, nav.GoToStart, nav.GoToEnd, nav.PrevPage, nav.NextPage) {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m modelTUI) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.endEdit()
			return m, nil
		case "esc":
			if err := m.ed.EditContent(m.editIndex, m.editOrig); err != nil {
				m.fail(err)
			}
			m.endEdit()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	before := m.ti.Value()
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if m.ti.Value() == before {
		return m, cmd
	}
	// every keystroke is a text-change event
	if err := m.ed.EditContent(m.editIndex, m.ti.Value()); err != nil {
		m.fail(err)
		m.endEdit()
		return m, cmd
	}
	m.sync()
	return m, cmd
}

func (m *modelTUI) endEdit() {
	m.mode = modeBrowse
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
	m.sync()
}

func (m *modelTUI) emit() string {
	text := m.ed.Emit(m.opts.Separator)
	m.emitted = append(m.emitted, text)
	return text
}

func (m *modelTUI) fail(err error) {
	m.status = errorStyle.Render(err.Error())
	m.log.Warn("operation failed", zap.Error(err))
}

// sync drains editor changes and redraws; an add scrolls to the new row.
func (m *modelTUI) sync() {
	changes := *m.changes
	*m.changes = nil

	m.resize()
	m.refresh()
	for _, c := range changes {
		if c.Kind == editor.ChangeAdded {
			m.list.Select(c.ScrollTo)
		}
	}
	if n := m.ed.Len(); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// refresh rebuilds the list rows from the editor. While grabbing, rows show
// the order the list would have if the item were dropped at the cursor.
func (m *modelTUI) refresh() {
	items := m.ed.Items()
	pend, armed := m.ed.Pending()

	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = rowItem{Item: it, armed: armed && pend == i}
	}
	if m.mode == modeGrab && m.grabFrom < len(rows) {
		dst := m.list.Index()
		if dst < 0 || dst >= len(rows) {
			dst = m.grabFrom
		}
		lifted := rows[m.grabFrom].(rowItem)
		lifted.grabbed = true
		rows = append(rows[:m.grabFrom], rows[m.grabFrom+1:]...)
		rows = append(rows[:dst], append([]list.Item{lifted}, rows[dst:]...)...)
	}
	m.list.SetItems(rows)
	m.list.Title = m.title()
}

func (m *modelTUI) title() string {
	t := fmt.Sprintf("%s   %s %d", titleStyle.Render("Items"), accentStyle.Render("Total"), m.ed.Len())
	if i, ok := m.ed.Pending(); ok {
		t += "  " + armedStyle.Render(fmt.Sprintf("armed #%d", i))
	}
	return t
}

func (m *modelTUI) resize() {
	listHeight := m.height - 4
	if m.mode == modeEdit {
		listHeight -= 3
	}
	if m.showDiff {
		listHeight -= m.diffHeight()
	}
	if listHeight < 3 {
		listHeight = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, listHeight)
}

func (m *modelTUI) diffHeight() int {
	return len(m.seed) + m.ed.Len() + 3
}

func (m modelTUI) View() string {
	content := m.list.View()

	if m.mode == modeEdit {
		inputLine := "Edit item" + "\n" + m.ti.View()
		content += "\n" + frameStyle.Render(inputLine)
	}
	if m.showDiff {
		d := orderdiff.Render(m.seed, m.ed.Contents(), m.opts.NoColor)
		content += "\n" + frameStyle.Render(accentStyle.Render("Start → now")+"\n"+d)
	}

	footer := m.status
	if m.mode == modeGrab {
		footer = m.status + "  " + successStyle.Render(helpLine(m.keys.grabHelp()))
	}
	if footer != "" {
		content += "\n" + footer
	}
	return panelString(content)
}

func helpLine(bs []key.Binding) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

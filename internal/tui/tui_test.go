package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/idilsaglam/relist/internal/editor"
	"github.com/idilsaglam/relist/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func setup(t *testing.T) (modelTUI, *editor.Editor) {
	t.Helper()
	ed, err := editor.New([]model.Item{
		{ID: "a", Content: "A"},
		{ID: "b", Content: "B"},
		{ID: "c", Content: "C"},
		{ID: "d", Content: "D"},
	})
	require.NoError(t, err)
	m := newModel(ed, Options{Separator: ", "})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}), ed
}

func send(t *testing.T, m modelTUI, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(modelTUI)
		require.True(t, ok)
	}
	return m
}

func rowContents(m modelTUI) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(rowItem).Content)
	}
	return out
}

func TestGrabAndDrop(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, runes("m"), keyDown, keyDown)
	assert.Equal(t, modeGrab, m.mode)
	assert.Equal(t, []string{"B", "C", "A", "D"}, rowContents(m), "preview follows the cursor")
	assert.Equal(t, []string{"A", "B", "C", "D"}, ed.Contents(), "nothing moves before the drop")

	m = send(t, m, keyEnter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"B", "C", "A", "D"}, ed.Contents())
	assert.Equal(t, 2, m.list.Index())
}

func TestGrabReleaseOutsideIsNoop(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, keyDown, runes(" "), keyDown, keyDown, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ed.Contents())
	assert.Equal(t, []string{"A", "B", "C", "D"}, rowContents(m))
	assert.Equal(t, 1, m.list.Index())
}

func TestGrabReleaseKeepsPendingDelete(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, keyDown, runes("d"), runes("m"), keyDown, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.status)
	idx, armed := ed.Pending()
	require.True(t, armed, "a release outside the list changes nothing")
	assert.Equal(t, 1, idx)
	assert.True(t, m.list.Items()[1].(rowItem).armed)
}

func TestDropDisarmsPendingDelete(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, runes("d"), keyDown, runes("m"), keyDown, keyEnter)
	_, armed := ed.Pending()
	assert.False(t, armed)
	for _, it := range m.list.Items() {
		assert.False(t, it.(rowItem).armed)
	}
	assert.NotContains(t, m.list.Title, "armed")
}

func TestGrabMoveUp(t *testing.T) {
	m, ed := setup(t)
	m = send(t, m, keyDown, keyDown, keyDown, runes("m"), keyUp, keyUp, keyUp, keyEnter)
	assert.Equal(t, []string{"D", "A", "B", "C"}, ed.Contents())
	assert.Equal(t, 0, m.list.Index())
}

func TestAddScrollsToNewItem(t *testing.T) {
	m, ed := setup(t)
	m = send(t, m, runes("a"), runes("a"))
	assert.Equal(t, 6, ed.Len())
	assert.Equal(t, "Item 6", ed.Items()[5].Content)
	assert.Equal(t, 5, m.list.Index())
	assert.Empty(t, *m.changes, "changes drained")
}

func TestInlineEdit(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, keyDown, runes("e"))
	require.Equal(t, modeEdit, m.mode)
	m = send(t, m, runes("x"))
	assert.Equal(t, "Bx", ed.Items()[1].Content, "edits apply on every keystroke")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("Z"), keyEnter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"A", "Z", "C", "D"}, ed.Contents())
}

func TestInlineEditEscRestores(t *testing.T) {
	m, ed := setup(t)
	m = send(t, m, runes("e"), runes("!!"), keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "A", ed.Items()[0].Content)
}

func TestDeleteNeedsTwoPresses(t *testing.T) {
	m, ed := setup(t)

	m = send(t, m, keyDown, keyDown, runes("d"))
	idx, armed := ed.Pending()
	require.True(t, armed)
	assert.Equal(t, 2, idx)
	assert.True(t, m.list.Items()[2].(rowItem).armed)

	// moving to another row and pressing d re-arms there
	m = send(t, m, keyDown, runes("d"))
	idx, _ = ed.Pending()
	assert.Equal(t, 3, idx)
	assert.Equal(t, 4, ed.Len())

	m = send(t, m, runes("d"))
	assert.Equal(t, []string{"A", "B", "C"}, ed.Contents())
	assert.Equal(t, 2, m.list.Index(), "cursor clamps to the new last row")
}

func TestDisarm(t *testing.T) {
	m, ed := setup(t)
	m = send(t, m, runes("d"), runes("x"))
	_, armed := ed.Pending()
	assert.False(t, armed)
	assert.Equal(t, "kept", m.status)
}

func TestEmitCollects(t *testing.T) {
	m, _ := setup(t)
	m = send(t, m, runes("m"), keyDown, keyDown, keyEnter, runes("p"))
	assert.Equal(t, []string{"B, C, A, D"}, m.emitted)
}

func TestCopy(t *testing.T) {
	m, _ := setup(t)

	var copied string
	m.copyFn = func(s string) error { copied = s; return nil }
	m = send(t, m, runes("y"))
	assert.Equal(t, "A, B, C, D", copied)
	assert.Len(t, m.emitted, 1)

	m.copyFn = func(string) error { return errors.New("no display") }
	m = send(t, m, runes("y"))
	assert.Contains(t, m.status, "no display")
}

func TestCopyDisabled(t *testing.T) {
	m, _ := setup(t)
	m = send(t, m, runes("y"))
	assert.Equal(t, "clipboard disabled", m.status)
	assert.Empty(t, m.emitted)
}

func TestDiffView(t *testing.T) {
	m, _ := setup(t)
	m.opts.NoColor = true
	m = send(t, m, runes("m"), keyDown, keyEnter, runes("v"))
	require.True(t, m.showDiff)
	view := m.View()
	assert.Contains(t, view, "Start → now")
	assert.Contains(t, view, "- ")
	assert.Contains(t, view, "+ ")
	assert.NotContains(t, view, "No changes")
}

func TestQuit(t *testing.T) {
	m, _ := setup(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestViewShowsRows(t *testing.T) {
	m, _ := setup(t)
	view := m.View()
	for _, s := range []string{"A", "B", "C", "D", "Items"} {
		assert.True(t, strings.Contains(view, s), "view missing %q", s)
	}
}

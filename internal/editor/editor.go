// Package editor owns an ordered list of items and the mutations a user can
// apply to it: reorder, add, edit and two-step delete.
//
// An Editor is single-writer. Callers (the TUI, the script runner) serialize
// operations; nothing here blocks or spawns goroutines.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/relist/internal/model"
)

var (
	// ErrIndexOutOfRange is returned when a caller passes an index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDuplicateID is returned by New when the seed repeats an ID.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Editor is the List Editor. The zero value is not usable; call New.
type Editor struct {
	items []model.Item

	armed   bool
	armedAt int

	ids  IDSource
	seen map[string]struct{} // every ID ever present, so none is reused

	observers []Observer
	log       *zap.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDSource sets the generator used for new item IDs. Default: Sequential.
func WithIDSource(src IDSource) Option {
	return func(e *Editor) {
		if src != nil {
			e.ids = src
		}
	}
}

// WithLogger sets the logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers a change listener.
func WithObserver(o Observer) Option {
	return func(e *Editor) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// New builds an Editor over a copy of seed. Items with an empty ID get a fresh one.
func New(seed []model.Item, opts ...Option) (*Editor, error) {
	e := &Editor{
		ids:  &Sequential{},
		seen: make(map[string]struct{}, len(seed)),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, it := range seed {
		if it.ID == "" {
			continue
		}
		if _, dup := e.seen[it.ID]; dup {
			return nil, fmt.Errorf("seed: %w: %q", ErrDuplicateID, it.ID)
		}
		e.seen[it.ID] = struct{}{}
	}

	e.items = make([]model.Item, 0, len(seed))
	for _, it := range seed {
		if it.ID == "" {
			it.ID = e.freshID()
		}
		e.items = append(e.items, it)
	}
	e.log.Debug("editor created", zap.Int("items", len(e.items)))
	return e, nil
}

// OnChange registers an additional observer after construction.
func (e *Editor) OnChange(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// Items returns a copy of the current sequence.
func (e *Editor) Items() []model.Item {
	out := make([]model.Item, len(e.items))
	copy(out, e.items)
	return out
}

// Len is the number of items.
func (e *Editor) Len() int { return len(e.items) }

// Pending reports the index armed for deletion, if any.
func (e *Editor) Pending() (int, bool) {
	if !e.armed {
		return -1, false
	}
	return e.armedAt, true
}

// Contents returns the item contents in display order.
func (e *Editor) Contents() []string {
	out := make([]string, len(e.items))
	for i, it := range e.items {
		out[i] = it.Content
	}
	return out
}

// Reorder moves the item at source so that it ends up at destination.
// A nil destination means the drop landed nowhere and the list is left alone.
// destination is a position in the list after the source item was removed.
func (e *Editor) Reorder(source int, destination *int) error {
	if destination == nil {
		e.log.Debug("reorder dropped outside", zap.Int("source", source))
		return nil
	}
	dst := *destination
	if err := e.checkIndex(source); err != nil {
		return fmt.Errorf("reorder source: %w", err)
	}
	if err := e.checkIndex(dst); err != nil {
		return fmt.Errorf("reorder destination: %w", err)
	}
	if source == dst {
		return nil
	}

	moved := e.items[source]
	e.items = append(e.items[:source], e.items[source+1:]...)
	e.items = append(e.items, model.Item{})
	copy(e.items[dst+1:], e.items[dst:])
	e.items[dst] = moved

	e.log.Debug("reordered", zap.String("id", moved.ID), zap.Int("from", source), zap.Int("to", dst))

	// Positions shifted; an index-based arming would now point elsewhere.
	if e.armed {
		e.armed = false
		e.notify(Change{Kind: ChangeDisarmed, Index: e.armedAt})
	}
	e.notify(Change{Kind: ChangeReordered, Index: dst, From: source})
	return nil
}

// AddItem appends a new item named after the new length ("Item N") and
// signals observers to scroll to it.
func (e *Editor) AddItem() model.Item {
	it := model.Item{
		ID:      e.freshID(),
		Content: fmt.Sprintf("Item %d", len(e.items)+1),
	}
	e.items = append(e.items, it)
	last := len(e.items) - 1

	e.log.Debug("added", zap.String("id", it.ID), zap.Int("index", last))
	e.notify(Change{Kind: ChangeAdded, Index: last, ScrollTo: last})
	return it
}

// EditContent replaces the content at index. Any text is accepted.
func (e *Editor) EditContent(index int, text string) error {
	if err := e.checkIndex(index); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	e.items[index].Content = text
	e.notify(Change{Kind: ChangeEdited, Index: index})
	return nil
}

// ToggleDeleteSelection arms index for deletion, or deletes it when it is
// already armed. Arming a different index discards the previous arming.
func (e *Editor) ToggleDeleteSelection(index int) (DeleteOutcome, error) {
	if err := e.checkIndex(index); err != nil {
		return OutcomeNone, fmt.Errorf("delete: %w", err)
	}

	switch {
	case e.armed && e.armedAt == index:
		removed := e.items[index]
		e.items = append(e.items[:index], e.items[index+1:]...)
		e.armed = false
		e.log.Debug("deleted", zap.String("id", removed.ID), zap.Int("index", index))
		e.notify(Change{Kind: ChangeDeleted, Index: index})
		return OutcomeDeleted, nil

	case e.armed:
		prev := e.armedAt
		e.armedAt = index
		e.notify(Change{Kind: ChangeArmed, Index: index, From: prev})
		return OutcomeRearmed, nil

	default:
		e.armed, e.armedAt = true, index
		e.notify(Change{Kind: ChangeArmed, Index: index, From: -1})
		return OutcomeArmed, nil
	}
}

// CancelDelete drops any pending deletion. It reports whether one was armed.
func (e *Editor) CancelDelete() bool {
	if !e.armed {
		return false
	}
	idx := e.armedAt
	e.armed = false
	e.notify(Change{Kind: ChangeDisarmed, Index: idx})
	return true
}

// Emit joins the contents in current order with sep.
func (e *Editor) Emit(sep string) string {
	out := strings.Join(e.Contents(), sep)
	e.log.Info("items emitted", zap.Int("count", len(e.items)), zap.Strings("order", e.orderIDs()))
	return out
}

// ---- internals ----

func (e *Editor) checkIndex(i int) error {
	if i < 0 || i >= len(e.items) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(e.items), i)
	}
	return nil
}

func (e *Editor) freshID() string {
	for {
		id := e.ids.NextID()
		if _, taken := e.seen[id]; taken || id == "" {
			continue
		}
		e.seen[id] = struct{}{}
		return id
	}
}

func (e *Editor) notify(c Change) {
	for _, o := range e.observers {
		o(c)
	}
}

func (e *Editor) orderIDs() []string {
	out := make([]string, len(e.items))
	for i, it := range e.items {
		out[i] = it.ID
	}
	return out
}

package localstate

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// A Component hosts the cells of one UI component instance. Cells are
// created by Use during Render and identified by the order of the Use calls,
// so a component may hold several cells, even for the same key.
//
// A Component is not safe for concurrent use.
type Component struct {
	options []Option

	slots     []slot
	cursor    int
	rendering bool

	listeners []func()
	closed    bool
}

type slot struct {
	key   string
	cell  any
	close func() error
}

// NewComponent creates a Component whose cells are created with options.
func NewComponent(options ...Option) *Component {
	return &Component{options: options}
}

// OnChange registers fn to run after any of the component's cells changes.
// This is where the host re-renders.
func (c *Component) OnChange(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// Render runs fn as one render pass of the component.
func (c *Component) Render(fn func()) {
	if c.closed {
		panic("localstate: Render called on a closed Component")
	}
	if c.rendering {
		panic("localstate: Render called during Render")
	}
	c.cursor = 0
	c.rendering = true
	defer func() {
		c.rendering = false
	}()
	fn()
}

// Close tears the component down and releases its cells. Stored entries are
// kept.
func (c *Component) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var firstErr error
	for _, s := range c.slots {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.slots = nil
	c.listeners = nil
	return firstErr
}

func (c *Component) changed() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Use returns the value, setter and resetter of the next cell of the
// component being rendered. The cell is created on the first render; later
// renders return its live value and the same setter and resetter.
//
// The key of a slot is fixed by the first render. If a later render passes
// a different key, the cell stays bound to the original one.
//
// Use panics when called outside Render, when the slot held a cell of a
// different type on an earlier render, or when the key is refused by the
// component's Registry.
func Use[S any](c *Component, key string, initial Initial[S]) (S, *Setter[S], *Resetter) {
	if !c.rendering {
		panic("localstate: Use called outside Render")
	}

	idx := c.cursor
	c.cursor++

	if idx < len(c.slots) {
		s := c.slots[idx]
		cell, ok := s.cell.(*Cell[S])
		if !ok {
			panic(fmt.Sprintf("localstate: slot %d holds %T, not %T; Use calls must happen in the same order on every render",
				idx, s.cell, cell))
		}
		if s.key != key {
			log.Warn().
				Int("slot", idx).
				Str("key", s.key).
				Str("requested-key", key).
				Msg("[localstate] key changed between renders, keeping the original key")
		}
		return cell.Value(), cell.Setter(), cell.Resetter()
	}

	cell, err := newCell(key, initial, func(v S) Binding[S] {
		return &notifyBinding[S]{v: v, notify: c.changed}
	}, c.options...)
	if err != nil {
		panic(fmt.Errorf("localstate: Use(%q): %w", key, err))
	}
	c.slots = append(c.slots, slot{key: key, cell: cell, close: cell.Close})

	return cell.Value(), cell.Setter(), cell.Resetter()
}

package localstate

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/rtctunnel/localstate/pkg/webstorage"
)

// A Cell is a value persisted in Web Storage under a fixed key.
//
// A Cell is not safe for concurrent use. Like the UI state it backs, it is
// meant to be driven from a single event loop.
type Cell[S any] struct {
	key      string
	initial  Initial[S]
	storage  webstorage.Storage
	registry *Registry
	binding  Binding[S]

	setter   *Setter[S]
	resetter *Resetter
	closed   bool
}

// New creates a Cell for key. Its initial value is the JSON stored at key
// when there is a usable entry, and initial otherwise. New never writes to
// storage.
//
// Unless WithStorage is given, the Cell uses webstorage.Default.
func New[S any](key string, initial Initial[S], options ...Option) (*Cell[S], error) {
	return newCell(key, initial, func(v S) Binding[S] {
		return &valueBinding[S]{v: v}
	}, options...)
}

func newCell[S any](key string, initial Initial[S], bind func(S) Binding[S], options ...Option) (*Cell[S], error) {
	cfg := getConfig(options...)
	if cfg.registry != nil {
		if err := cfg.registry.acquire(key); err != nil {
			return nil, err
		}
	}

	c := &Cell[S]{
		key:      key,
		initial:  initial,
		storage:  cfg.storage,
		registry: cfg.registry,
	}
	c.setter = &Setter[S]{cell: c}
	c.resetter = &Resetter{reset: c.Reset}
	c.binding = bind(c.load())
	return c, nil
}

// load resolves the value the Cell starts with.
func (c *Cell[S]) load() S {
	def := c.initial.resolve()
	if c.storage == nil {
		return def
	}

	raw, ok, err := c.storage.GetItem(c.key)
	if err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("[localstate] failed to read stored value, using default")
		return def
	}
	if !ok {
		return def
	}

	var v S
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Debug().Err(err).Str("key", c.key).Msg("[localstate] stored value is not valid JSON, using default")
		return def
	}

	log.Debug().Str("key", c.key).Msg("[localstate] restored stored value")
	return v
}

// Key returns the storage key of the Cell.
func (c *Cell[S]) Key() string {
	return c.key
}

// Value returns the live value.
func (c *Cell[S]) Value() S {
	return c.binding.Current()
}

// Persistent reports whether the Cell writes through to storage.
func (c *Cell[S]) Persistent() bool {
	return c.storage != nil
}

// Set stores the next value and makes it the live value.
func (c *Cell[S]) Set(u Update[S]) {
	next := u.next(c.binding.Current())
	if c.storage != nil {
		c.persist(next)
	}
	c.binding.SetCurrent(next)
}

func (c *Cell[S]) persist(v S) {
	bs, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("[localstate] failed to encode value, not persisted")
		return
	}
	if err := c.storage.SetItem(c.key, string(bs)); err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("[localstate] failed to store value")
	}
}

// Reset removes the stored entry and returns the Cell to its default value.
// A DefaultFunc default is produced again.
func (c *Cell[S]) Reset() {
	def := c.initial.resolve()
	if c.storage != nil {
		if err := c.storage.RemoveItem(c.key); err != nil {
			log.Warn().Err(err).Str("key", c.key).Msg("[localstate] failed to remove stored value")
		}
	}
	c.binding.SetCurrent(def)
}

// Setter returns the Cell's setter. It is the same pointer for the Cell's
// whole lifetime.
func (c *Cell[S]) Setter() *Setter[S] {
	return c.setter
}

// Resetter returns the Cell's resetter. It is the same pointer for the Cell's
// whole lifetime.
func (c *Cell[S]) Resetter() *Resetter {
	return c.resetter
}

// Close releases the Cell's registry claim. The stored entry is kept.
func (c *Cell[S]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.registry != nil {
		c.registry.release(c.key)
	}
	return nil
}

// A Setter updates a Cell.
type Setter[S any] struct {
	cell *Cell[S]
}

// Set calls Cell.Set.
func (s *Setter[S]) Set(u Update[S]) {
	s.cell.Set(u)
}

// A Resetter resets a Cell.
type Resetter struct {
	reset func()
}

// Reset calls Cell.Reset.
func (r *Resetter) Reset() {
	r.reset()
}

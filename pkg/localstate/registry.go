package localstate

import (
	"errors"
	"fmt"
	"sync"
)

// ErrKeyInUse is returned when an ExclusiveKeys registry already has a live
// Cell bound to the requested key.
var ErrKeyInUse = errors.New("key is already bound to a live cell")

// A KeyPolicy decides what happens when two live cells claim the same key.
type KeyPolicy int

const (
	// SharedKeys lets any number of cells use a key. Their writes race and
	// the last one wins.
	SharedKeys KeyPolicy = iota
	// ExclusiveKeys rejects a second claim until the first cell is closed.
	ExclusiveKeys
)

func (p KeyPolicy) String() string {
	switch p {
	case SharedKeys:
		return "shared"
	case ExclusiveKeys:
		return "exclusive"
	default:
		return fmt.Sprintf("KeyPolicy(%d)", int(p))
	}
}

// A Registry tracks which keys are bound to live cells.
type Registry struct {
	policy KeyPolicy

	mu     sync.Mutex
	claims map[string]int
}

// NewRegistry creates a Registry that enforces policy.
func NewRegistry(policy KeyPolicy) *Registry {
	return &Registry{
		policy: policy,
		claims: make(map[string]int),
	}
}

// Policy returns the registry's key policy.
func (r *Registry) Policy() KeyPolicy {
	return r.policy
}

// Claims returns the number of live cells bound to key.
func (r *Registry) Claims(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.claims[key]
}

func (r *Registry) acquire(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.policy == ExclusiveKeys && r.claims[key] > 0 {
		return fmt.Errorf("%w: %q", ErrKeyInUse, key)
	}
	r.claims[key]++
	return nil
}

func (r *Registry) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.claims[key] <= 1 {
		delete(r.claims, key)
		return
	}
	r.claims[key]--
}

// Package webstorage defines the Web Storage contract that persistent state
// cells read from and write to, plus its non-browser implementations.
package webstorage

// A Storage is a string-keyed, string-valued persistent store with the
// semantics of window.localStorage.
type Storage interface {
	// GetItem returns the raw text stored at key. ok is false when there is
	// no entry.
	GetItem(key string) (value string, ok bool, err error)
	// SetItem overwrites the entry at key.
	SetItem(key, value string) error
	// RemoveItem deletes the entry at key. Removing a missing key is not an
	// error.
	RemoveItem(key string) error
	// Keys lists every key currently stored.
	Keys() ([]string, error)
	// Clear removes every entry.
	Clear() error
}

package webstorage

import "sync"

var defaultStorage struct {
	once    sync.Once
	storage Storage
}

// Default returns the storage of the current environment, or nil when the
// environment has none. Detection runs once per process; every later call
// returns the same result.
func Default() Storage {
	defaultStorage.once.Do(func() {
		defaultStorage.storage = detect()
	})
	return defaultStorage.storage
}

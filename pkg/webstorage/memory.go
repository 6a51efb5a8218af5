package webstorage

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

var memoryStorages = struct {
	sync.RWMutex
	storages map[string]*MemoryStorage
}{
	storages: map[string]*MemoryStorage{},
}

// MemoryStorage is a Storage held in process memory.
type MemoryStorage struct {
	name string

	mu    sync.RWMutex
	items map[string]string
}

// NewMemory creates a new, private MemoryStorage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// Memory returns the process-wide MemoryStorage with the given name, creating
// it on first use. Every caller asking for the same name shares one store.
func Memory(name string) *MemoryStorage {
	memoryStorages.RLock()
	ms, ok := memoryStorages.storages[name]
	memoryStorages.RUnlock()
	if !ok {
		memoryStorages.Lock()
		ms, ok = memoryStorages.storages[name]
		if !ok {
			ms = NewMemory()
			ms.name = name
			memoryStorages.storages[name] = ms
		}
		memoryStorages.Unlock()
	}
	return ms
}

func (ms *MemoryStorage) GetItem(key string) (value string, ok bool, err error) {
	ms.mu.RLock()
	value, ok = ms.items[key]
	ms.mu.RUnlock()
	return value, ok, nil
}

func (ms *MemoryStorage) SetItem(key, value string) error {
	log.Debug().Str("storage", ms.name).Str("key", key).Msg("[webstorage] memory set")
	ms.mu.Lock()
	ms.items[key] = value
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStorage) RemoveItem(key string) error {
	log.Debug().Str("storage", ms.name).Str("key", key).Msg("[webstorage] memory remove")
	ms.mu.Lock()
	delete(ms.items, key)
	ms.mu.Unlock()
	return nil
}

// Keys returns the stored keys in sorted order.
func (ms *MemoryStorage) Keys() ([]string, error) {
	ms.mu.RLock()
	keys := make([]string, 0, len(ms.items))
	for k := range ms.items {
		keys = append(keys, k)
	}
	ms.mu.RUnlock()
	sort.Strings(keys)
	return keys, nil
}

func (ms *MemoryStorage) Clear() error {
	ms.mu.Lock()
	ms.items = make(map[string]string)
	ms.mu.Unlock()
	return nil
}

package localstate

import "github.com/rtctunnel/localstate/pkg/webstorage"

type config struct {
	storage    webstorage.Storage
	storageSet bool
	registry   *Registry
}

// An Option customizes a Cell.
type Option func(*config)

func getConfig(options ...Option) *config {
	cfg := new(config)
	for _, option := range options {
		option(cfg)
	}
	if !cfg.storageSet {
		cfg.storage = webstorage.Default()
	}
	return cfg
}

// WithStorage sets the storage a Cell persists to. A nil storage means the
// environment has none: the Cell then lives in memory only.
func WithStorage(storage webstorage.Storage) Option {
	return func(cfg *config) {
		cfg.storage = storage
		cfg.storageSet = true
	}
}

// WithoutStorage keeps a Cell in memory only.
func WithoutStorage() Option {
	return WithStorage(nil)
}

// WithRegistry claims the Cell's key in registry for the Cell's lifetime.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		cfg.registry = registry
	}
}

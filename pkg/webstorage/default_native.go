//go:build !js

package webstorage

import (
	"github.com/caarlos0/env/v11"
	"github.com/kirsle/configdir"
	"github.com/rs/zerolog/log"
)

// ProfileConfig selects the profile used by Default outside the browser.
type ProfileConfig struct {
	Dir    string `env:"LOCALSTATE_PROFILE_DIR"`
	Origin string `env:"LOCALSTATE_ORIGIN" envDefault:"default"`
}

// DefaultProfileDir is the per-user directory that holds the profile
// database when LOCALSTATE_PROFILE_DIR is unset.
func DefaultProfileDir() string {
	return configdir.LocalConfig("localstate")
}

func detect() Storage {
	var cfg ProfileConfig
	if err := env.Parse(&cfg); err != nil {
		log.Warn().Err(err).Msg("[webstorage] invalid profile environment, storage disabled")
		return nil
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultProfileDir()
	}

	p, err := OpenProfile(cfg.Dir, cfg.Origin)
	if err != nil {
		log.Warn().Err(err).Str("dir", cfg.Dir).Msg("[webstorage] profile unavailable, storage disabled")
		return nil
	}
	return p
}

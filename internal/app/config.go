package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
	yaml "gopkg.in/yaml.v2"

	"github.com/rtctunnel/localstate/pkg/webstorage"
)

// A Config is the configuration for the localstate command.
type Config struct {
	ProfileDir string `json:"profiledir,omitempty" yaml:"profiledir,omitempty" env:"LOCALSTATE_PROFILE_DIR"`
	Origin     string `json:"origin,omitempty" yaml:"origin,omitempty" env:"LOCALSTATE_ORIGIN"`
	LogLevel   string `json:"loglevel,omitempty" yaml:"loglevel,omitempty" env:"LOCALSTATE_LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() *Config {
	return &Config{
		ProfileDir: webstorage.DefaultProfileDir(),
		Origin:     webstorage.DefaultOrigin,
		LogLevel:   "info",
	}
}

// LoadConfig loads the config off of the disk. JSON files may contain
// comments and trailing commas. Environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bs, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		bs, err = hujson.Standardize(bs)
		if err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		err = json.Unmarshal(bs, cfg)
		if err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	default:
		err = yaml.Unmarshal(bs, cfg)
		if err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides the config with any LOCALSTATE_* environment variables.
func (cfg *Config) ApplyEnv() error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save saves the config file atomically.
func (cfg *Config) Save(path string) error {
	var bs []byte
	var err error
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		bs, err = json.MarshalIndent(cfg, "", "  ")
	default:
		bs, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}

	err = atomic.WriteFile(path, bytes.NewReader(bs))
	if err != nil {
		return err
	}

	return nil
}

// OpenProfile opens the Web Storage profile the config points at.
func (cfg *Config) OpenProfile() (*webstorage.Profile, error) {
	return webstorage.OpenProfile(cfg.ProfileDir, cfg.Origin)
}

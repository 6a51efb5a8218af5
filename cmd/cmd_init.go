package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rtctunnel/localstate/internal/app"
)

var (
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Creates a new localstate config and stores it to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.LoadConfig(options.configFile)
			if err == nil {
				return fmt.Errorf("config file %s already exists. remove it if you want to re-initialize", options.configFile)
			} else if !os.IsNotExist(err) {
				return err
			}

			cfg := app.DefaultConfig()
			if options.profileDir != "" {
				cfg.ProfileDir = options.profileDir
			}
			if options.origin != "" {
				cfg.Origin = options.origin
			}

			log.Info().
				Str("profile-dir", cfg.ProfileDir).
				Str("origin", cfg.Origin).
				Str("config-file", options.configFile).
				Msg("saving config file")

			if err := configdir.MakePath(filepath.Dir(options.configFile)); err != nil {
				return fmt.Errorf("failed to create config folder: %w", err)
			}
			return cfg.Save(options.configFile)
		},
	}
)

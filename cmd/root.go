package cmd

import (
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rtctunnel/localstate/internal/app"
	"github.com/rtctunnel/localstate/pkg/webstorage"
)

var (
	options struct {
		configFile string
		logLevel   string
		profileDir string
		origin     string
	}
	RootCmd = &cobra.Command{
		Use:           "localstate",
		Short:         "localstate inspects and edits persisted state cells",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := options.logLevel
			if !cmd.Flags().Changed("log-level") {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				if cfg.LogLevel != "" {
					level = cfg.LogLevel
				}
			}

			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)
			return nil
		},
	}
)

func init() {
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(resetCmd)

	RootCmd.PersistentFlags().StringVar(&options.configFile, "config-file", defaultConfigFile(), "the config file")
	RootCmd.PersistentFlags().StringVar(&options.logLevel, "log-level", "info", "the log level to use")
	RootCmd.PersistentFlags().StringVar(&options.profileDir, "profile-dir", "", "the profile directory (overrides the config file)")
	RootCmd.PersistentFlags().StringVar(&options.origin, "origin", "", "the storage origin (overrides the config file)")
}

func defaultConfigFile() string {
	return filepath.Join(configdir.LocalConfig("localstate"), "localstate.yaml")
}

// loadConfig reads the config file, falling back to the defaults when it
// does not exist, and applies the command-line overrides.
func loadConfig() (*app.Config, error) {
	cfg, err := app.LoadConfig(options.configFile)
	if os.IsNotExist(err) {
		cfg = app.DefaultConfig()
		err = cfg.ApplyEnv()
	}
	if err != nil {
		return nil, err
	}

	if options.profileDir != "" {
		cfg.ProfileDir = options.profileDir
	}
	if options.origin != "" {
		cfg.Origin = options.origin
	}
	return cfg, nil
}

func openProfile() (*webstorage.Profile, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("profile-dir", cfg.ProfileDir).
		Str("origin", cfg.Origin).
		Msg("opening profile")

	return cfg.OpenProfile()
}

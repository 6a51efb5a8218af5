package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Prints information about the localstate config and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			profile, err := cfg.OpenProfile()
			if err != nil {
				return err
			}
			defer profile.Close()

			keys, err := profile.Keys()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config-file: %s\n", options.configFile)
			fmt.Fprintf(out, "profile: %s\n", profile.Path())
			fmt.Fprintf(out, "origin: %s\n", profile.Origin())
			fmt.Fprintf(out, "entries: %d\n", len(keys))
			return nil
		},
	}
)

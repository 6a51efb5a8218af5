package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rtctunnel/localstate/pkg/localstate"
	"github.com/rtctunnel/localstate/pkg/webstorage"
)

var cellOptions struct {
	defaultValue string
	raw          bool
}

var (
	getCmd = &cobra.Command{
		Use:   "get KEY",
		Short: "Prints the value a state cell bound to KEY starts with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := openProfile()
			if err != nil {
				return err
			}
			defer profile.Close()

			if cellOptions.raw {
				value, ok, err := profile.GetItem(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no entry at %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}

			def, err := parseJSON(cellOptions.defaultValue)
			if err != nil {
				return fmt.Errorf("invalid --default: %w", err)
			}
			cell, err := openCell(profile, args[0], def)
			if err != nil {
				return err
			}
			defer cell.Close()

			fmt.Fprintln(cmd.OutOrStdout(), string(cell.Value()))
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set KEY JSON",
		Short: "Stores a JSON value under KEY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseJSON(args[1])
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}

			profile, err := openProfile()
			if err != nil {
				return err
			}
			defer profile.Close()

			cell, err := openCell(profile, args[0], nil)
			if err != nil {
				return err
			}
			defer cell.Close()

			cell.Set(localstate.To(value))

			log.Info().Str("key", args[0]).Str("origin", profile.Origin()).Msg("stored value")
			return nil
		},
	}
	resetCmd = &cobra.Command{
		Use:   "reset KEY",
		Short: "Removes the entry stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := openProfile()
			if err != nil {
				return err
			}
			defer profile.Close()

			cell, err := openCell(profile, args[0], nil)
			if err != nil {
				return err
			}
			defer cell.Close()

			cell.Reset()

			log.Info().Str("key", args[0]).Str("origin", profile.Origin()).Msg("reset value")
			return nil
		},
	}
)

func init() {
	getCmd.Flags().StringVar(&cellOptions.defaultValue, "default", "null", "the JSON value used when nothing usable is stored")
	getCmd.Flags().BoolVar(&cellOptions.raw, "raw", false, "print the stored text as is")
}

func openCell(storage webstorage.Storage, key string, def json.RawMessage) (*localstate.Cell[json.RawMessage], error) {
	return localstate.New(key, localstate.Default(def), localstate.WithStorage(storage))
}

func parseJSON(s string) (json.RawMessage, error) {
	if !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("%q is not valid JSON", s)
	}
	return json.RawMessage(s), nil
}

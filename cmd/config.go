package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"get.pme.sh/hosts/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	// Add the settings commands
	//
	getCmd := &cobra.Command{
		Use:     "get",
		Short:   "Show the saved settings",
		GroupID: refGroup("settings", "Settings Commands"),
	}
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   "Change the saved settings",
		GroupID: refGroup("settings", "Settings Commands"),
	}
	dumpCmd := &cobra.Command{
		Use:   "all",
		Short: "Display all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var res []byte
			if cmd.Flag("json").Value.String() == "true" {
				res, err = json.Marshal(config.Get())
			} else {
				res, err = yaml.Marshal(config.Get())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(res))
			return nil
		},
	}
	dumpCmd.Flags().Bool("json", false, "Output in JSON format")
	getCmd.AddCommand(dumpCmd)
	config.RootCommand.AddCommand(getCmd, setCmd)

	getset := func(name string, get func(*config.Config) any, set func(*config.Config, string) error) {
		setCmd.AddCommand(&cobra.Command{
			Use:   name + " [value]",
			Short: "Set the saved " + name,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.Update(func(s *config.Config) error {
					return set(s, args[0])
				})
			},
		})
		getCmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: "Get the saved " + name,
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), get(config.Get()))
			},
		})
	}
	getset(
		"path",
		func(s *config.Config) any { return s.Path },
		func(s *config.Config, v string) (err error) {
			if v != "" {
				v, err = filepath.Abs(v)
			}
			s.Path = v
			return
		},
	)
	getset(
		"sort",
		func(s *config.Config) any { return s.Sort },
		func(s *config.Config, v string) (err error) {
			s.Sort, err = strconv.ParseBool(v)
			return
		},
	)
}

package cmd

import (
	"fmt"
	"io"

	"get.pme.sh/hosts/config"
	"get.pme.sh/hosts/hosts"
	"get.pme.sh/hosts/ui"
	"get.pme.sh/hosts/xlog"

	"github.com/spf13/cobra"
)

func runRemove(w io.Writer, path, target string) error {
	file, err := hosts.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := file.RemoveFromFile(path, target)
	if err != nil {
		return err
	}

	xlog.Info().
		Str("path", path).
		Stringer("action", res.Action).
		Str("target", target).
		Int("count", res.Count).
		Msg("remove")

	switch res.Action {
	case hosts.RemovedByAddress:
		adr := ui.Render(ui.AddressStyle, target)
		if res.Count == 1 {
			fmt.Fprintf(w, "Entry with ip %s removed\n", adr)
		} else {
			fmt.Fprintf(w, "Removed %d entries with ip %s\n", res.Count, adr)
		}
	case hosts.RemovedByHostname:
		host := ui.Render(ui.HostnameStyle, target)
		if res.Count == 1 {
			fmt.Fprintf(w, "Entry with hostname %s removed\n", host)
		} else {
			fmt.Fprintf(w, "Removed %d entries with hostname %s\n", res.Count, host)
		}
	case hosts.RemoveInvalid:
		// Reported, but not a failure of the command.
		fmt.Fprintf(w, "Error: invalid entry %s\n", ui.Render(ui.BannerStyle, target))
	}
	return nil
}

func init() {
	config.RootCommand.AddCommand(&cobra.Command{
		Use:     "remove <ip|hostname>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry (or entries) from the hosts file.",
		Args:    cobra.ExactArgs(1),
		GroupID: refGroup("hosts", "Hosts Commands"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.OutOrStdout(), config.Path(), args[0])
		},
	})
}

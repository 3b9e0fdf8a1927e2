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

func renderEntry(e hosts.Entry) string {
	return ui.Render(ui.AddressStyle, e.Address.String()) + " " + ui.Render(ui.HostnameStyle, e.Hostname.String())
}

func runAdd(w io.Writer, path, adr, host string) error {
	file, err := hosts.ReadFile(path)
	if err != nil {
		return err
	}
	entry, err := hosts.ParseEntry(adr, host)
	if err != nil {
		return err
	}
	res, err := file.AddToFile(path, entry)
	if err != nil {
		return err
	}

	xlog.Info().
		Str("path", path).
		Stringer("action", res.Action).
		Stringer("address", entry.Address).
		Stringer("hostname", entry.Hostname).
		Msg("add")

	switch res.Action {
	case hosts.Added:
		fmt.Fprintln(w, "Entry added")
		fmt.Fprintln(w, renderEntry(entry))
	case hosts.Updated:
		fmt.Fprintln(w, "Existing entry updated")
		fmt.Fprintf(w, "%s > %s\n", ui.Render(ui.AddressStyle, res.Previous.String()), renderEntry(entry))
	case hosts.Skipped:
		fmt.Fprintln(w, "Entry already exists")
		fmt.Fprintln(w, renderEntry(entry))
	}
	return nil
}

func init() {
	config.RootCommand.AddCommand(&cobra.Command{
		Use:     "add <ip> <hostname>",
		Short:   "Add an entry to your hosts file.",
		Long:    "Add an entry to your hosts file, or point an existing hostname at a new address.",
		Args:    cobra.ExactArgs(2),
		GroupID: refGroup("hosts", "Hosts Commands"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.OutOrStdout(), config.Path(), args[0], args[1])
		},
	})
}

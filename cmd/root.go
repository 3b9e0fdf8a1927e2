package cmd

import (
	"io"

	"get.pme.sh/hosts/config"
	"get.pme.sh/hosts/revision"
	"get.pme.sh/hosts/ui"
	"get.pme.sh/hosts/xlog"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var logCloser io.Closer

func refGroup(id, name string) string {
	if !config.RootCommand.ContainsGroup(id) {
		config.RootCommand.AddGroup(&cobra.Group{
			ID:    id,
			Title: name + ":",
		})
	}
	return id
}

func init() {
	config.RootCommand.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logCloser = xlog.Setup(*config.LogFile)
	}
	config.RootCommand.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
			logCloser = nil
		}
	}
	// Bare "hosts" lists the entries.
	config.RootCommand.Args = cobra.NoArgs
	config.RootCommand.RunE = func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), config.Path(), listOptions{sorted: config.Get().Sort})
	}
}

func Execute() {
	maxprocs.Set()
	config.RootCommand.Short += ui.Render(ui.FaintStyle, " ("+revision.GetVersion()+")")
	if err := config.RootCommand.Execute(); err != nil {
		xlog.Err(err).Msg("command failed")
		if logCloser != nil {
			logCloser.Close()
		}
		ui.ExitWithError(err)
	}
}

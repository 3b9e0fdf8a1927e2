package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"get.pme.sh/hosts/config"
	"get.pme.sh/hosts/hosts"
	"get.pme.sh/hosts/ui"
	"get.pme.sh/hosts/util"
	"get.pme.sh/hosts/xlog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputJSON
	outputYAML
)

var outputFormats = util.NewEnum(map[outputFormat]string{
	outputText: "text",
	outputJSON: "json",
	outputYAML: "yaml",
})

type listOptions struct {
	sorted bool
	format outputFormat
}

// listing is the machine readable form of a list.
type listing struct {
	Path     string        `json:"path" yaml:"path"`
	Entries  []hosts.Entry `json:"entries" yaml:"entries"`
	Invalids []string      `json:"invalid" yaml:"invalid"`
}

func runList(w io.Writer, path string, opt listOptions) error {
	file, err := hosts.ReadFile(path)
	if err != nil {
		return err
	}
	xlog.Debug().Str("path", path).Int("lines", len(file.Lines)).Msg("hosts file read")

	entries := file.Entries()
	if opt.sorted {
		entries = file.Sorted()
	}
	invalids := file.Invalids()

	switch opt.format {
	case outputJSON, outputYAML:
		doc := listing{Path: path, Entries: entries, Invalids: invalids}
		if doc.Entries == nil {
			doc.Entries = []hosts.Entry{}
		}
		if doc.Invalids == nil {
			doc.Invalids = []string{}
		}
		var data []byte
		lexer := "json"
		if opt.format == outputJSON {
			data, err = json.MarshalIndent(doc, "", "  ")
			data = append(data, '\n')
		} else {
			lexer = "yaml"
			data, err = yaml.Marshal(doc)
		}
		if err != nil {
			return err
		}
		ui.Highlight(w, string(data), lexer)
		return nil
	}

	fmt.Fprintf(w, "Found %s in %s\n", ui.Plural(len(entries), "entry", "entries"), path)
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n",
			ui.Render(ui.AddressStyle, ui.PadRight(e.Address.String(), file.AddressWidth)),
			ui.Render(ui.HostnameStyle, e.Hostname.String()),
		)
	}
	if len(invalids) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.Render(ui.BannerStyle, "Found "+ui.Plural(len(invalids), "invalid entry", "invalid entries")))
		for _, line := range invalids {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func init() {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the entries in your hosts file.",
		Args:    cobra.NoArgs,
		GroupID: refGroup("hosts", "Hosts Commands"),
	}
	opt := listOptions{}
	listCmd.Flags().VarP(outputFormats.Value(&opt.format), "output", "o",
		"Output format, one of: "+strings.Join(outputFormats.Options(), ", "))
	listCmd.Flags().BoolVarP(&opt.sorted, "sort", "s", false, "Sort entries by address then hostname")
	listCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("sort") {
			opt.sorted = config.Get().Sort
		}
		return runList(cmd.OutOrStdout(), config.Path(), opt)
	}
	config.RootCommand.AddCommand(listCmd)
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags.
var Verbose = GBool("verbose", "V", false, "Enable verbose logging")
var Dumb = GBool("dumb", "D", IsTermDumb(), "Disable colors and highlighting")
var EnvName = GString("env", "E", "", "Environment name, selects a separate settings directory")
var HostsPath = GString("path", "p", "", "Path to the hosts file (defaults to the system path)")
var LogFile = GString("log-file", "", "", "Append a JSON log of every change to this file")

var cache = sync.Map{}

func mkdironce(dir string) {
	if _, loaded := cache.LoadOrStore(dir, true); !loaded {
		os.MkdirAll(dir, 0755)
	}
}

// Home directory.
func Home() (home string) {
	userDir, _ := os.UserHomeDir()
	if *EnvName == "" {
		home = filepath.Join(userDir, ".hosts")
	} else if filepath.IsAbs(*EnvName) {
		home = *EnvName
	} else {
		home = filepath.Join(userDir, ".hosts-"+*EnvName)
	}
	mkdironce(home)
	return
}

// Global from either environment or command line.
var RootCommand = &cobra.Command{
	Use:           "hosts",
	Short:         "Manage [IP hostname] entries in your hosts file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func getenv(name string) (string, bool) {
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "_")
	return os.LookupEnv("HOSTS_" + name)
}
func GString(name, shorthand string, value string, usage string) *string {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		value = env
	}
	flags.StringVarP(&value, name, shorthand, value, usage)
	return &value
}
func GBool(name, shorthand string, value bool, usage string) *bool {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		if v, e := strconv.ParseBool(env); e == nil {
			value = v
		}
	}
	flags.BoolVarP(&value, name, shorthand, value, usage)
	return &value
}

// Utils.
func IsTermDumb() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	isTrue := map[string]bool{
		"1": true, "t": true, "y": true,
		"true": true, "yes": true, "on": true,
		"0": false, "f": false, "n": false,
		"false": false, "no": false, "off": false,
	}
	envs := []string{"HOSTS_NON_INTERACTIVE", "CI", "NON_INTERACTIVE"}
	for _, env := range envs {
		if v, ok := os.LookupEnv(env); ok {
			if b, ok := isTrue[strings.ToLower(v)]; ok {
				return b
			}
		}
	}
	return false
}

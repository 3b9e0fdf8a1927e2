package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"

	"get.pme.sh/hosts/hosts"

	atomicfile "github.com/natefinch/atomic"
)

type Config struct {
	Path string `json:"path" yaml:"path"` // Hosts file used when --path is not given
	Sort bool   `json:"sort" yaml:"sort"` // List entries sorted by address instead of file order
}

func configPath() string {
	return filepath.Join(Home(), "config.json")
}
func readConfig() (out Config, err error) {
	data, err := os.ReadFile(configPath())
	if err != nil && !os.IsNotExist(err) {
		return
	}
	if len(data) != 0 {
		err = json.Unmarshal(data, &out)
	} else {
		err = nil
	}
	return
}
func writeConfigLocked(in *Config) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(configPath(), bytes.NewReader(data))
}

var settings atomic.Pointer[Config]

func Update(update func(*Config) error) error {
	return WithLock(func() error {
		c, err := readConfig()
		if err != nil {
			return err
		}
		if update != nil {
			if err = update(&c); err != nil {
				return err
			}
		}
		if err = writeConfigLocked(&c); err != nil {
			return err
		}
		settings.Store(&c)
		return nil
	})
}

func Get() *Config {
	res := settings.Load()
	if res == nil {
		c, err := readConfig()
		if err != nil {
			panic(err)
		}
		settings.Store(&c)
		return &c
	}
	return res
}

// Path resolves the hosts file: the --path flag, then the saved setting, then
// the platform default.
func Path() string {
	if *HostsPath != "" {
		return *HostsPath
	}
	if p := Get().Path; p != "" {
		return p
	}
	return hosts.SystemPath()
}

// Reload drops the cached settings so the next Get reads them from disk.
func Reload() { settings.Store(nil) }

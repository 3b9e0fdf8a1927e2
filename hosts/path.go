package hosts

import (
	"os"
	"runtime"
)

var systemPath string

func init() {
	systemPath = "/etc/hosts"
	if runtime.GOOS == "windows" {
		systemPath = os.ExpandEnv("${SystemRoot}\\System32\\drivers\\etc\\hosts")
	}
}

// SystemPath is the platform's hosts file.
func SystemPath() string { return systemPath }

func openRead(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY, 0644)
}
func openWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}

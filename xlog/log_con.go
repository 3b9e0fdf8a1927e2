package xlog

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"get.pme.sh/hosts/config"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func NewConsoleWriter(f io.Writer) LevelWriter {
	var w io.Writer = f
	if file, ok := f.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		w = &zerolog.ConsoleWriter{
			Out:     f,
			NoColor: *config.Dumb,
			FormatTimestamp: func(i any) string {
				ms, _ := i.(json.Number)
				msi, _ := ms.Int64()
				if msi == 0 {
					return ""
				}
				return time.UnixMilli(msi).Format(time.Kitchen)
			},
			FieldsExclude: []string{zerolog.ErrorStackFieldName, DomainFieldName},
		}
	}
	level := LevelWarn
	if *config.Verbose {
		level = LevelDebug
	}
	return &zerolog.FilteredLevelWriter{
		Level:  level,
		Writer: zerolog.LevelWriterAdapter{Writer: w},
	}
}
func StderrWriter() LevelWriter { return NewConsoleWriter(os.Stderr) }

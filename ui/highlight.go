package ui

import (
	"io"

	"get.pme.sh/hosts/config"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight writes source highlighted as lexer (json, yaml) or as-is when
// colors are disabled or the highlighter fails.
func Highlight(w io.Writer, source, lexer string) {
	if !*config.Dumb {
		if err := quick.Highlight(w, source, lexer, "terminal256", "monokai"); err == nil {
			return
		}
	}
	io.WriteString(w, source)
}

package ui

import (
	"fmt"
	"io"
	"os"

	"get.pme.sh/hosts/config"

	"github.com/charmbracelet/lipgloss"
)

var (
	FaintColor    = lipgloss.AdaptiveColor{Light: "#8E8E8E", Dark: "#8b8b8b"}
	FaintStyle    = lipgloss.NewStyle().Foreground(FaintColor)
	OkColor       = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	OkStyle       = lipgloss.NewStyle().Foreground(OkColor)
	ErrColor      = lipgloss.AdaptiveColor{Light: "#770000", Dark: "#AA0000"}
	ErrStyle      = lipgloss.NewStyle().Foreground(ErrColor)
	AddressColor  = lipgloss.AdaptiveColor{Light: "#A67C00", Dark: "#FFFF55"}
	AddressStyle  = lipgloss.NewStyle().Foreground(AddressColor)
	HostnameColor = lipgloss.AdaptiveColor{Light: "#007A8A", Dark: "#55FFFF"}
	HostnameStyle = lipgloss.NewStyle().Foreground(HostnameColor)
	BannerStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("9"))
)

// Render applies style unless colors are disabled.
func Render(style lipgloss.Style, s string) string {
	if *config.Dumb {
		return s
	}
	return style.Render(s)
}

func errLinePfx() string {
	if *config.Dumb {
		return "Error: "
	}
	return lipgloss.NewStyle().Background(ErrColor).Bold(true).Render(" ERR ") + " "
}
func okLinePfx() string {
	if *config.Dumb {
		return ""
	}
	return lipgloss.NewStyle().Background(OkColor).Bold(true).Render(" OK ") + " "
}

func RenderErrorLine(err any) string {
	return errLinePfx() + Display(err)
}
func ExitWithError(err any) {
	FprintError(os.Stderr, err)
	os.Exit(1)
}
func FprintError(w io.Writer, err any) {
	fmt.Fprintln(w, RenderErrorLine(err))
}

func RenderOkLine(res any) string {
	return okLinePfx() + Display(res)
}

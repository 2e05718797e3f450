// Package theme holds the lipgloss styles shared by log and command output.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Icons used in command output.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconArrow   = "→"
)

// Colors is the palette a Theme is built from.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// Theme groups the styles used across docnav.
type Theme struct {
	Colors Colors

	Header  lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}

// DefaultTheme is built from the adaptive palette at package init.
var DefaultTheme = NewTheme(defaultColors())

// NewTheme derives the styles from a palette.
func NewTheme(c Colors) *Theme {
	return &Theme{
		Colors:  c,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(c.Blue),
		Accent:  lipgloss.NewStyle().Foreground(c.Violet),
		Muted:   lipgloss.NewStyle().Foreground(c.MutedText),
		Success: lipgloss.NewStyle().Bold(true).Foreground(c.Green),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(c.Red),
		Border:  lipgloss.NewStyle().Foreground(c.Border),
	}
}

func defaultColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: "#6f894e", Dark: "#98bb6c"},
		Yellow:    lipgloss.AdaptiveColor{Light: "#77713f", Dark: "#e6c384"},
		Red:       lipgloss.AdaptiveColor{Light: "#c84053", Dark: "#e46876"},
		Cyan:      lipgloss.AdaptiveColor{Light: "#597b75", Dark: "#7aa89f"},
		Blue:      lipgloss.AdaptiveColor{Light: "#4d699b", Dark: "#7e9cd8"},
		Violet:    lipgloss.AdaptiveColor{Light: "#624c83", Dark: "#957fb8"},
		MutedText: lipgloss.AdaptiveColor{Light: "#8a8980", Dark: "#727169"},
		Border:    lipgloss.AdaptiveColor{Light: "#c7c7d4", Dark: "#54546d"},
	}
}

// InitializeColor sets the lipgloss color profile from the environment.
// NO_COLOR disables styling; CLICOLOR_FORCE=1 or COLORTERM=truecolor force
// full color even when output is not a terminal.
func InitializeColor() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

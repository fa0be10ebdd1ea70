package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Red, Peach, Green, Blue, Overlay1, Text lipgloss.Color
}{
	Red: "#f38ba8", Peach: "#fab387", Green: "#a6e3a1", Blue: "#89b4fa",
	Overlay1: "#7f849c", Text: "#cdd6f4",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Red, Peach, Green, Blue, Overlay1, Text lipgloss.Color
}{
	Red: "#d20f39", Peach: "#fe640b", Green: "#40a02b", Blue: "#1e66f5",
	Overlay1: "#8c8fa1", Text: "#4c4f69",
}

// ThemePalette holds the current color scheme.
type ThemePalette struct {
	Red, Peach, Green, Blue, Overlay, Text lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	if DetectTheme() == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}

// SetDarkTheme switches to Catppuccin Mocha.
func SetDarkTheme() {
	currentTheme = ThemePalette{
		Red: mocha.Red, Peach: mocha.Peach, Green: mocha.Green,
		Blue: mocha.Blue, Overlay: mocha.Overlay1, Text: mocha.Text,
	}
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte.
func SetLightTheme() {
	currentTheme = ThemePalette{
		Red: latte.Red, Peach: latte.Peach, Green: latte.Green,
		Blue: latte.Blue, Overlay: latte.Overlay1, Text: latte.Text,
	}
	refreshStyles()
}

// Semantic styles for the shell's three user-facing surfaces: runtime
// error lines (§7), verbose trace lines (§4.5), and the REPL prompt.
var (
	ErrorStyle  lipgloss.Style
	TraceStyle  lipgloss.Style
	PromptStyle lipgloss.Style
)

func refreshStyles() {
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)
	TraceStyle = lipgloss.NewStyle().Foreground(currentTheme.Overlay)
	PromptStyle = lipgloss.NewStyle().Foreground(currentTheme.Green).Bold(true)
}

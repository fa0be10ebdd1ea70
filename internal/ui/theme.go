// Package ui renders the shell's handful of user-facing styles (error
// lines, verbose trace lines, the REPL prompt) through lipgloss, the way
// the teacher repo renders its file-listing and prompt styles, instead
// of writing raw ANSI codes inline at each call site.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme is the detected light/dark terminal background.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DetectTheme returns the detected terminal theme. The background-color
// query only makes sense against a real terminal; when stderr is a pipe
// or file (e.g. -c output redirected to a log) DetectTheme skips the
// query and falls back to dark, matching lipgloss's own behaviour for
// non-TTY output.
func DetectTheme() Theme {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ThemeDark
	}
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// Package tui is the interactive two-section form editor.
package tui

import (
	"todoform/internal/form"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options configures a TUI session.
type Options struct {
	// Glyphs is the configured glyph set ("unicode" or "ascii").
	Glyphs string
	Logger *log.Logger
}

// Run edits f until the user quits. Every edit is persisted by the form
// itself, so there is nothing to flush on exit.
func Run(f *form.Form, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference(opts.Glyphs)

	m := newFormModel(f, opts.Logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

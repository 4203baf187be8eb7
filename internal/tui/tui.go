// Package tui implements the interactive card album: an activation gate, the
// sealed deck, the gallery with flip-to-reveal, and the modal surfaces
// (card detail, changelog, legal notice, comments, confirmations) layered on
// top of it.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive album and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(newAppModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/markcmd/embed"
)

type memClipboard struct {
	s     string
	items []embed.Item
}

func (c *memClipboard) ReadText() (string, error)        { return c.s, nil }
func (c *memClipboard) WriteText(s string) error         { c.s = s; return nil }
func (c *memClipboard) ReadItems() ([]embed.Item, error) { return c.items, nil }

// withColorProfile pins lipgloss output for the duration of a test.
func withColorProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func keys(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }

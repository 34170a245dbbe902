package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/markcmd/command"
	"github.com/iw2rmb/markcmd/config"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Copy, Cut, Paste key.Binding

	// Commands maps each formatting command to its binding.
	Commands map[command.Command]key.Binding
	// Image opens the image URL prompt.
	Image key.Binding

	// Popover keys.
	Confirm, Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	km, err := KeyMapFromActions(config.DefaultKeys())
	if err != nil {
		panic(err)
	}
	return km
}

// KeyMapFromActions builds the default movement bindings plus the command
// bindings in actions, keyed by command name or config.ActionImage.
func KeyMapFromActions(actions map[string][]string) (KeyMap, error) {
	km := KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Commands: make(map[command.Command]key.Binding, len(command.Commands())),
	}

	for action, keys := range actions {
		b := key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), action))
		if len(keys) == 0 {
			b.SetEnabled(false)
		}
		if action == config.ActionImage {
			km.Image = b
			continue
		}
		cmd, err := command.ParseCommand(action)
		if err != nil {
			return KeyMap{}, fmt.Errorf("key action: %w", err)
		}
		km.Commands[cmd] = b
	}
	return km, nil
}

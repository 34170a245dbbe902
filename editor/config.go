package editor

import "github.com/iw2rmb/markcmd/command"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// Options configures the formatting engine (placeholder words).
	Options command.Options

	// Footprint sizes the URL popover in cells. Zero Width or Height is taken
	// from the rendered popover; zero BottomOffset means one row.
	Footprint command.Footprint

	// Clipboard enables copy/cut/paste keys. Nil disables them; bracketed
	// paste from the terminal still works.
	Clipboard Clipboard

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// OnError receives edits the engine or buffer rejected. The update itself
	// is a no-op in that case.
	OnError func(error)

	ReadOnly bool
}

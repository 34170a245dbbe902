package editor

import (
	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
)

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Command is the formatting command behind this update, or CommandNone
	// for typing, movement and paste.
	Command command.Command

	// Change is the text mutation made by this update; nil for pure caret or
	// selection moves.
	Change *buffer.Change

	Text string
}

func buildChangeEvent(b *buffer.Buffer, cmd command.Command) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Command: cmd,
		Text:    b.Text(),
	}
	if r, ok := b.SelectedRange(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == b.Version() {
		ev.Change = &ch
	}
	return ev
}

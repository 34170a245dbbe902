package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markcmd/command"
)

var commandOrder = command.Commands()

// RunCommand applies a formatting command to the current selection, as a
// toolbar button would. Link opens the URL popover instead of editing.
func (m Model) RunCommand(c command.Command) (Model, tea.Cmd) {
	if m.buf == nil || m.cfg.ReadOnly || m.popover.active {
		return m, nil
	}
	res, err := m.engine.Apply(m.buf.Document(), m.buf.Selection(), c)
	if err != nil {
		m.reportErr(err)
		return m, nil
	}
	if res.OpenLinkPopover {
		return m.openPopover(popoverLink)
	}
	if err := m.buf.Apply(res.Edit(), res.Selection); err != nil {
		m.reportErr(err)
		return m, nil
	}
	m.lastCommand = c
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, nil
}

// InsertImage puts an image reference to url at the selection. Hosts call it
// once an upload has produced a URL.
func (m Model) InsertImage(url string) Model {
	if m.buf == nil || m.cfg.ReadOnly {
		return m
	}
	res, err := m.engine.InsertImage(m.buf.Document(), m.buf.Selection(), url)
	if err != nil {
		m.reportErr(err)
		return m
	}
	if err := m.buf.Apply(res.Edit(), res.Selection); err != nil {
		m.reportErr(err)
		return m
	}
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m
}

func (m Model) reportErr(err error) {
	if m.cfg.OnError != nil {
		m.cfg.OnError(err)
	}
}
